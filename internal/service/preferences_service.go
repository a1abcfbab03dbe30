package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type PreferencesStore interface {
	Upsert(ctx context.Context, p *domain.UserPreferences) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error)
}

type PreferencesService struct {
	base
	repo PreferencesStore
	now  func() time.Time
}

func NewPreferencesService(repo PreferencesStore, logger *zap.Logger) *PreferencesService {
	return &PreferencesService{base: newBase(logger), repo: repo, now: time.Now}
}

// SavePreferences replaces the caller's preferences row.
func (s *PreferencesService) SavePreferences(ctx context.Context, prefs domain.UserPreferences) domain.Result[*domain.UserPreferences] {
	const op = "preferences.save"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[*domain.UserPreferences](err)
	}

	p := &domain.UserPreferences{
		UserID:              sess.UserID,
		Objective:           strings.TrimSpace(prefs.Objective),
		DietaryPreference:   strings.TrimSpace(prefs.DietaryPreference),
		DietaryRestrictions: cleanRestrictions(prefs.DietaryRestrictions),
		UpdatedAt:           s.now(),
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.Fail[*domain.UserPreferences](s.remote(op, sess, err))
	}
	return domain.Ok(p)
}

// FetchPreferences returns nil data when the caller never saved preferences.
func (s *PreferencesService) FetchPreferences(ctx context.Context) domain.Result[*domain.UserPreferences] {
	const op = "preferences.fetch"

	sess, err := s.session(ctx, op)
	if err != nil {
		return domain.Fail[*domain.UserPreferences](err)
	}

	p, err := s.repo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		return domain.Fail[*domain.UserPreferences](s.remote(op, sess, err))
	}
	return domain.Ok(p)
}

func cleanRestrictions(in domain.Restrictions) domain.Restrictions {
	out := domain.Restrictions{}
	seen := make(map[string]bool, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
