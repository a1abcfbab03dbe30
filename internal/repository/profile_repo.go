package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query, args, err := sq.Select("usuario_id", "nombre", "peso_actual", "peso_objetivo",
		"altura", "edad", "genero", "nivel_actividad", "updated_at").
		From("perfil_usuario").
		Where(sq.Eq{"usuario_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}

	var p domain.UserProfile
	err = r.db.GetContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// Upsert writes the given columns of the user's profile, creating the row
// on first use. Unknown keys are dropped; columns not in fields keep their
// stored value.
func (r *ProfileRepository) Upsert(ctx context.Context, userID string, fields map[string]interface{}) error {
	cols := domain.ProfileColumns(fields)
	if len(cols) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(cols)+1)
	values = append(values, userID)
	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		values = append(values, fields[col])
		updates = append(updates, col+" = VALUES("+col+")")
	}

	query, args, err := sq.Insert("perfil_usuario").
		Columns(append([]string{"usuario_id"}, cols...)...).
		Values(values...).
		Suffix("ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build profile upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
