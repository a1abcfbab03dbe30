package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type UserPreferences struct {
	UserID              string       `json:"usuario_id" db:"usuario_id"`
	Objective           string       `json:"objetivo" db:"objetivo"`
	DietaryPreference   string       `json:"preferencia_dietetica" db:"preferencia_dietetica"`
	DietaryRestrictions Restrictions `json:"restricciones_dieteticas" db:"restricciones_dieteticas"`
	UpdatedAt           time.Time    `json:"updated_at" db:"updated_at"`
}

// Restrictions is stored as a JSON array in a text column.
type Restrictions []string

func (r Restrictions) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Restrictions) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = Restrictions{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Restrictions", src)
	}
	if len(raw) == 0 {
		*r = Restrictions{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode restrictions: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*r = out
	return nil
}
