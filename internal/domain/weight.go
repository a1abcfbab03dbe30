package domain

import "time"

// DateLayout is the calendar-date format used for weight records.
const DateLayout = "2006-01-02"

// WeightRecord is one weight entry. Weight is always stored in kilograms and
// there is at most one record per user and date.
type WeightRecord struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"usuario_id" db:"usuario_id"`
	Weight    float64   `json:"peso" db:"peso"`
	Date      string    `json:"fecha" db:"fecha"`
	Notes     *string   `json:"notas" db:"notas"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
