// Package units converts weights between kilograms and pounds. Stored
// weights are always kilograms; the display unit only affects input and
// output.
package units

import (
	"fmt"
	"strings"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

// PoundsPerKilogram is the fixed conversion factor.
const PoundsPerKilogram = 2.20462

// Canonical is the unit every stored weight is expressed in.
const Canonical = domain.Kilograms

// ConvertWeight converts value from one unit to another without rounding.
func ConvertWeight(value float64, from, to domain.WeightUnit) float64 {
	if from == to {
		return value
	}
	if from == domain.Kilograms && to == domain.Pounds {
		return value * PoundsPerKilogram
	}
	if from == domain.Pounds && to == domain.Kilograms {
		return value / PoundsPerKilogram
	}
	return value
}

// FormatWeight renders value with one decimal place, optionally followed by
// the unit symbol.
func FormatWeight(value float64, unit domain.WeightUnit, withSuffix bool) string {
	s := fmt.Sprintf("%.1f", value)
	if withSuffix {
		s += " " + string(unit)
	}
	return s
}

// ParseUnit accepts "lb" or "kg", case-insensitively.
func ParseUnit(s string) (domain.WeightUnit, error) {
	u := domain.WeightUnit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: unknown weight unit %q", domain.ErrInvalidInput, s)
	}
	return u, nil
}

// UnitSource reports the currently selected display unit.
type UnitSource interface {
	Get() domain.WeightUnit
}

// Converter translates between the canonical unit and whatever display unit
// its source currently reports.
type Converter struct {
	source UnitSource
}

// NewConverter returns a Converter reading the display unit from source.
func NewConverter(source UnitSource) *Converter {
	return &Converter{source: source}
}

// Unit is the current display unit. It falls back to pounds when there is
// no source or the source holds an unknown unit.
func (c *Converter) Unit() domain.WeightUnit {
	if c.source == nil {
		return domain.Pounds
	}
	u := c.source.Get()
	if !u.Valid() {
		return domain.Pounds
	}
	return u
}

// ToDisplayWeight converts a stored kilogram value to the display unit.
func (c *Converter) ToDisplayWeight(kg float64) float64 {
	return ConvertWeight(kg, Canonical, c.Unit())
}

// ToCanonicalWeight converts a display-unit value to kilograms.
func (c *Converter) ToCanonicalWeight(display float64) float64 {
	return ConvertWeight(display, c.Unit(), Canonical)
}

// Format renders a canonical weight in the display unit.
func (c *Converter) Format(kg float64, withSuffix bool) string {
	return FormatWeight(c.ToDisplayWeight(kg), c.Unit(), withSuffix)
}
