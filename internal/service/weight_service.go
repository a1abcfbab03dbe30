package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type WeightStore interface {
	Upsert(ctx context.Context, rec *domain.WeightRecord) (int64, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]domain.WeightRecord, error)
	Latest(ctx context.Context, userID string) (*domain.WeightRecord, error)
	GetByID(ctx context.Context, userID string, id int64) (*domain.WeightRecord, error)
}

type WeightHistoryService struct {
	base
	repo WeightStore
	now  func() time.Time
}

func NewWeightHistoryService(repo WeightStore, logger *zap.Logger) *WeightHistoryService {
	return &WeightHistoryService{base: newBase(logger), repo: repo, now: time.Now}
}

// FetchWeightHistory lists the caller's records, newest date first. A limit
// of zero or less returns every record.
func (s *WeightHistoryService) FetchWeightHistory(ctx context.Context, limit int) domain.Result[[]domain.WeightRecord] {
	const op = "weight.fetch_history"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[[]domain.WeightRecord](err)
	}

	records, err := s.repo.ListByUserID(ctx, sess.UserID, limit)
	if err != nil {
		return domain.Fail[[]domain.WeightRecord](s.remote(op, sess, err))
	}
	if records == nil {
		records = []domain.WeightRecord{}
	}
	return domain.Ok(records)
}

// AddWeight records kg for today and returns the stored row. A second call on
// the same day replaces the weight and notes of the existing record, keeping
// its id and creation time.
func (s *WeightHistoryService) AddWeight(ctx context.Context, kg float64, notes *string) domain.Result[*domain.WeightRecord] {
	const op = "weight.add"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[*domain.WeightRecord](err)
	}

	if kg <= 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return domain.Fail[*domain.WeightRecord](fmt.Errorf("%w: weight must be a positive number", domain.ErrInvalidInput))
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}

	rec := &domain.WeightRecord{
		UserID: sess.UserID,
		Weight: kg,
		Date:   s.now().Format(domain.DateLayout),
		Notes:  notes,
	}

	id, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return domain.Fail[*domain.WeightRecord](s.remote(op, sess, err))
	}

	stored, err := s.repo.GetByID(ctx, sess.UserID, id)
	if err != nil {
		return domain.Fail[*domain.WeightRecord](s.remote(op, sess, err))
	}
	if stored == nil {
		return domain.Fail[*domain.WeightRecord](s.remote(op, sess, fmt.Errorf("weight %d missing after upsert", id)))
	}

	s.logger.Info("weight recorded",
		zap.String("user_id", sess.UserID), zap.String("date", stored.Date), zap.Int64("id", id))
	return domain.Ok(stored)
}

// FetchCurrentWeight returns the weight of the most recent record, or nil
// when the caller has none.
func (s *WeightHistoryService) FetchCurrentWeight(ctx context.Context) domain.Result[*float64] {
	const op = "weight.fetch_current"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[*float64](err)
	}

	rec, err := s.repo.Latest(ctx, sess.UserID)
	if err != nil {
		return domain.Fail[*float64](s.remote(op, sess, err))
	}
	if rec == nil {
		return domain.Ok[*float64](nil)
	}
	w := rec.Weight
	return domain.Ok(&w)
}
