package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type PreferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

func (r *PreferencesRepository) Upsert(ctx context.Context, p *domain.UserPreferences) error {
	query, args, err := sq.Insert("preferencias_usuario").
		Columns("usuario_id", "objetivo", "preferencia_dietetica", "restricciones_dieteticas").
		Values(p.UserID, p.Objective, p.DietaryPreference, p.DietaryRestrictions).
		Suffix("ON DUPLICATE KEY UPDATE objetivo = VALUES(objetivo), " +
			"preferencia_dietetica = VALUES(preferencia_dietetica), " +
			"restricciones_dieteticas = VALUES(restricciones_dieteticas)").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preferences upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}

func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	query, args, err := sq.Select("usuario_id", "objetivo", "preferencia_dietetica",
		"restricciones_dieteticas", "updated_at").
		From("preferencias_usuario").
		Where(sq.Eq{"usuario_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build preferences query: %w", err)
	}

	var p domain.UserPreferences
	err = r.db.GetContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &p, nil
}
