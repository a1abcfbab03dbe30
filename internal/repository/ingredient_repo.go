package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type IngredientRepository struct {
	db *sqlx.DB
}

func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// UpsertBatch writes all items in one statement. Rows that collide on
// (usuario_id, nombre) are merged: the meal is replaced and the category
// kept unless a new one is given.
func (r *IngredientRepository) UpsertBatch(ctx context.Context, items []domain.Ingredient) error {
	if len(items) == 0 {
		return nil
	}

	builder := sq.Insert("ingredientes").Columns("usuario_id", "nombre", "categoria", "comida")
	for _, it := range items {
		builder = builder.Values(it.UserID, it.Name, it.Category, it.Meal)
	}

	query, args, err := builder.
		Suffix("ON DUPLICATE KEY UPDATE categoria = COALESCE(VALUES(categoria), categoria), comida = VALUES(comida)").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build ingredient upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert ingredients: %w", err)
	}
	return nil
}

var ingredientColumns = []string{"id", "usuario_id", "nombre", "categoria", "comida", "created_at"}

func (r *IngredientRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Ingredient, error) {
	return r.list(ctx, sq.Eq{"usuario_id": userID})
}

// ListByNames returns the user's stored rows whose name is in names.
func (r *IngredientRepository) ListByNames(ctx context.Context, userID string, names []string) ([]domain.Ingredient, error) {
	if len(names) == 0 {
		return []domain.Ingredient{}, nil
	}
	return r.list(ctx, sq.Eq{"usuario_id": userID, "nombre": names})
}

func (r *IngredientRepository) list(ctx context.Context, where sq.Eq) ([]domain.Ingredient, error) {
	query, args, err := sq.Select(ingredientColumns...).
		From("ingredientes").
		Where(where).
		OrderBy("nombre ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build ingredient query: %w", err)
	}

	items := []domain.Ingredient{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return items, nil
}
