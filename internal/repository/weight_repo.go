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

var weightColumns = []string{"id", "usuario_id", "peso", "fecha", "notas", "created_at"}

type WeightRepository struct {
	db *sqlx.DB
}

func NewWeightRepository(db *sqlx.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

// Upsert stores the record for (usuario_id, fecha), overwriting weight and
// notes when one already exists, and returns the row id.
func (r *WeightRepository) Upsert(ctx context.Context, rec *domain.WeightRecord) (int64, error) {
	query, args, err := sq.Insert("historico_peso").
		Columns("usuario_id", "peso", "fecha", "notas").
		Values(rec.UserID, rec.Weight, rec.Date, rec.Notes).
		Suffix("ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), peso = VALUES(peso), notas = VALUES(notas)").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build weight upsert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert weight: %w", err)
	}
	return result.LastInsertId()
}

// ListByUserID returns records newest date first. limit <= 0 means no cap.
func (r *WeightRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.WeightRecord, error) {
	builder := sq.Select(weightColumns...).
		From("historico_peso").
		Where(sq.Eq{"usuario_id": userID}).
		OrderBy("fecha DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build weight query: %w", err)
	}

	records := []domain.WeightRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list weights: %w", err)
	}
	return records, nil
}

// Latest returns the most recent record, or nil when the user has none.
func (r *WeightRepository) Latest(ctx context.Context, userID string) (*domain.WeightRecord, error) {
	query, args, err := sq.Select(weightColumns...).
		From("historico_peso").
		Where(sq.Eq{"usuario_id": userID}).
		OrderBy("fecha DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build weight query: %w", err)
	}

	var rec domain.WeightRecord
	err = r.db.GetContext(ctx, &rec, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest weight: %w", err)
	}
	return &rec, nil
}

// GetByID returns the user's record with id, or nil when there is none.
func (r *WeightRepository) GetByID(ctx context.Context, userID string, id int64) (*domain.WeightRecord, error) {
	query, args, err := sq.Select(weightColumns...).
		From("historico_peso").
		Where(sq.Eq{"id": id, "usuario_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build weight query: %w", err)
	}

	var rec domain.WeightRecord
	err = r.db.GetContext(ctx, &rec, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weight: %w", err)
	}
	return &rec, nil
}
