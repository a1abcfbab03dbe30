package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, userID string, fields map[string]interface{}) error
}

type ProfileService struct {
	base
	repo ProfileStore
}

func NewProfileService(repo ProfileStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{base: newBase(logger), repo: repo}
}

// FetchProfile returns nil data when no profile row exists yet.
func (s *ProfileService) FetchProfile(ctx context.Context) domain.Result[*domain.UserProfile] {
	const op = "profile.fetch"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[*domain.UserProfile](err)
	}

	p, err := s.repo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		return domain.Fail[*domain.UserProfile](s.remote(op, sess, err))
	}
	return domain.Ok(p)
}

// UpdateProfile applies the recognised keys of fields, creating the profile
// row on first use, and returns the refreshed row. Values are checked against
// their column types before anything is written. MySQL has no
// INSERT ... RETURNING, so the row is read back after the write.
func (s *ProfileService) UpdateProfile(ctx context.Context, fields map[string]interface{}) domain.Result[*domain.UserProfile] {
	const op = "profile.update"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[*domain.UserProfile](err)
	}

	set, err := domain.NormalizeProfileFields(fields)
	if err != nil {
		return domain.Fail[*domain.UserProfile](err)
	}

	if err := s.repo.Upsert(ctx, sess.UserID, set); err != nil {
		return domain.Fail[*domain.UserProfile](s.remote(op, sess, err))
	}

	p, err := s.repo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		return domain.Fail[*domain.UserProfile](s.remote(op, sess, err))
	}
	return domain.Ok(p)
}
