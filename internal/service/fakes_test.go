package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

func authed(userID string) context.Context {
	return auth.WithSession(context.Background(), auth.Session{UserID: userID, Email: userID + "@example.com"})
}

// memWeights enforces one record per (user, date) like the real table.
type memWeights struct {
	mu      sync.Mutex
	nextID  int64
	records map[string]*domain.WeightRecord
	err     error
	calls   int
}

func newMemWeights() *memWeights {
	return &memWeights{records: make(map[string]*domain.WeightRecord)}
}

func (m *memWeights) Upsert(_ context.Context, rec *domain.WeightRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	key := rec.UserID + "|" + rec.Date
	if existing, ok := m.records[key]; ok {
		existing.Weight = rec.Weight
		existing.Notes = rec.Notes
		return existing.ID, nil
	}
	m.nextID++
	cp := *rec
	cp.ID = m.nextID
	cp.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(cp.ID) * time.Minute)
	m.records[key] = &cp
	return cp.ID, nil
}

func (m *memWeights) GetByID(_ context.Context, userID string, id int64) (*domain.WeightRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.records {
		if r.UserID == userID && r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memWeights) ListByUserID(_ context.Context, userID string, limit int) ([]domain.WeightRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.WeightRecord{}
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memWeights) Latest(ctx context.Context, userID string) (*domain.WeightRecord, error) {
	list, err := m.ListByUserID(ctx, userID, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

type memPreferences struct {
	rows map[string]domain.UserPreferences
	err  error
}

func (m *memPreferences) Upsert(_ context.Context, p *domain.UserPreferences) error {
	if m.err != nil {
		return m.err
	}
	m.rows[p.UserID] = *p
	return nil
}

func (m *memPreferences) GetByUserID(_ context.Context, userID string) (*domain.UserPreferences, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type memIngredients struct {
	rows    map[string]domain.Ingredient
	batches int
	nextID  int64
	err     error
}

func (m *memIngredients) UpsertBatch(_ context.Context, items []domain.Ingredient) error {
	m.batches++
	if m.err != nil {
		return m.err
	}
	for _, it := range items {
		key := it.UserID + "|" + it.Name
		if existing, ok := m.rows[key]; ok {
			it.ID = existing.ID
			if it.Category == nil {
				it.Category = existing.Category
			}
		} else {
			m.nextID++
			it.ID = m.nextID
		}
		m.rows[key] = it
	}
	return nil
}

func (m *memIngredients) ListByUserID(_ context.Context, userID string) ([]domain.Ingredient, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Ingredient
	for _, it := range m.rows {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memProfiles struct {
	rows map[string]*domain.UserProfile
	err  error
}

func (m *memProfiles) GetByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// Upsert applies normalized values the way the repository does: strings,
// float64 and int64, nil clearing a column.
func (m *memProfiles) Upsert(_ context.Context, userID string, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.rows[userID]
	if !ok {
		p = &domain.UserProfile{UserID: userID}
		m.rows[userID] = p
	}
	for col, v := range fields {
		switch col {
		case "nombre":
			p.Name = optString(v)
		case "genero":
			p.Gender = optString(v)
		case "nivel_actividad":
			p.ActivityLevel = optString(v)
		case "peso_actual":
			p.CurrentWeight = optFloat(v)
		case "peso_objetivo":
			p.TargetWeight = optFloat(v)
		case "altura":
			p.Height = optInt(v)
		case "edad":
			p.Age = optInt(v)
		}
	}
	return nil
}

func optString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func optFloat(v interface{}) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

func optInt(v interface{}) *int {
	if n, ok := v.(int64); ok {
		i := int(n)
		return &i
	}
	return nil
}

func (m *memIngredients) ListByNames(ctx context.Context, userID string, names []string) ([]domain.Ingredient, error) {
	all, err := m.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []domain.Ingredient{}
	for _, it := range all {
		for _, n := range names {
			if strings.EqualFold(it.Name, n) {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}
