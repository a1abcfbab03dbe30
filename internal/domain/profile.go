package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

type UserProfile struct {
	UserID        string    `json:"usuario_id" db:"usuario_id"`
	Name          *string   `json:"nombre" db:"nombre"`
	CurrentWeight *float64  `json:"peso_actual" db:"peso_actual"`
	TargetWeight  *float64  `json:"peso_objetivo" db:"peso_objetivo"`
	Height        *int      `json:"altura" db:"altura"`
	Age           *int      `json:"edad" db:"edad"`
	Gender        *string   `json:"genero" db:"genero"`
	ActivityLevel *string   `json:"nivel_actividad" db:"nivel_actividad"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type fieldKind int

const (
	textField fieldKind = iota
	decimalField
	wholeField
)

// ProfileFields lists the columns a partial profile update may touch.
var ProfileFields = map[string]fieldKind{
	"nombre":          textField,
	"peso_actual":     decimalField,
	"peso_objetivo":   decimalField,
	"altura":          wholeField,
	"edad":            wholeField,
	"genero":          textField,
	"nivel_actividad": textField,
}

// ProfileColumns returns the updatable columns of fields in sorted order.
func ProfileColumns(fields map[string]interface{}) []string {
	cols := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := ProfileFields[k]; ok {
			cols = append(cols, k)
		}
	}
	sort.Strings(cols)
	return cols
}

// NormalizeProfileFields keeps the updatable keys of fields and coerces each
// value to its column type. Text is trimmed, decimals must be finite numbers
// and whole columns must hold integers. A nil value clears the column.
func NormalizeProfileFields(fields map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))
	for _, col := range ProfileColumns(fields) {
		v, err := coerceProfileValue(ProfileFields[col], fields[col])
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidInput, col, err)
		}
		out[col] = v
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no updatable profile fields", ErrInvalidInput)
	}
	return out, nil
}

func coerceProfileValue(kind fieldKind, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	switch kind {
	case textField:
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		return s, nil
	case decimalField:
		f, ok := toFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("must be a number")
		}
		if f < 0 {
			return nil, errors.New("must not be negative")
		}
		return f, nil
	case wholeField:
		f, ok := toFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, errors.New("must be a whole number")
		}
		if f < 0 || f > math.MaxInt32 {
			return nil, errors.New("is out of range")
		}
		return int64(f), nil
	}
	return nil, errors.New("is not updatable")
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
