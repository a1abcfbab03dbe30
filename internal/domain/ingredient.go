package domain

import "time"

// Ingredient is unique per (usuario_id, nombre).
type Ingredient struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"usuario_id" db:"usuario_id"`
	Name      string    `json:"nombre" db:"nombre"`
	Category  *string   `json:"categoria" db:"categoria"`
	Meal      *string   `json:"comida" db:"comida"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
