package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
	"github.com/yusufkecer/jarosmart-backend/internal/ingredients"
)

type IngredientStore interface {
	UpsertBatch(ctx context.Context, items []domain.Ingredient) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Ingredient, error)
	ListByNames(ctx context.Context, userID string, names []string) ([]domain.Ingredient, error)
}

type IngredientsService struct {
	base
	repo IngredientStore
}

func NewIngredientsService(repo IngredientStore, logger *zap.Logger) *IngredientsService {
	return &IngredientsService{base: newBase(logger), repo: repo}
}

// SaveIngredients stores list for meal in a single batch and returns the
// stored rows. Names already saved by the caller are merged rather than
// rejected, and repeated names inside list collapse to their first occurrence.
func (s *IngredientsService) SaveIngredients(ctx context.Context, list []ingredients.Candidate, meal string) domain.Result[[]domain.Ingredient] {
	const op = "ingredients.save"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[[]domain.Ingredient](err)
	}

	var mealPtr *string
	if m := strings.TrimSpace(meal); m != "" {
		mealPtr = &m
	}

	items := []domain.Ingredient{}
	names := []string{}
	seen := make(map[string]bool, len(list))
	for _, c := range list {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return domain.Fail[[]domain.Ingredient](fmt.Errorf("%w: ingredient name is required", domain.ErrInvalidInput))
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		var category *string
		if cat := strings.TrimSpace(c.Category); cat != "" {
			category = &cat
		}
		items = append(items, domain.Ingredient{
			UserID:   sess.UserID,
			Name:     name,
			Category: category,
			Meal:     mealPtr,
		})
		names = append(names, name)
	}
	if len(items) == 0 {
		return domain.Ok(items)
	}

	if err := s.repo.UpsertBatch(ctx, items); err != nil {
		return domain.Fail[[]domain.Ingredient](s.remote(op, sess, err))
	}

	stored, err := s.repo.ListByNames(ctx, sess.UserID, names)
	if err != nil {
		return domain.Fail[[]domain.Ingredient](s.remote(op, sess, err))
	}
	return domain.Ok(stored)
}

func (s *IngredientsService) FetchIngredients(ctx context.Context) domain.Result[[]domain.Ingredient] {
	const op = "ingredients.fetch"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[[]domain.Ingredient](err)
	}

	items, err := s.repo.ListByUserID(ctx, sess.UserID)
	if err != nil {
		return domain.Fail[[]domain.Ingredient](s.remote(op, sess, err))
	}
	if items == nil {
		items = []domain.Ingredient{}
	}
	return domain.Ok(items)
}
