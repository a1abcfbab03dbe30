package prefs

import (
	"sync"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

// Preference mirrors one store key in memory. The mirror is loaded from the
// store on first use and written back synchronously on every change. Store
// failures never surface to callers: reads fall back to the default and
// failed writes are logged while the mirror still takes the new value.
type Preference[T ~string] struct {
	store  Store
	key    string
	def    T
	valid  func(T) bool
	flip   func(T) T
	logger *zap.Logger

	mu      sync.Mutex
	loaded  bool
	value   T
	nextID  int
	watches map[int]func(T)
}

func newPreference[T ~string](store Store, key string, def T, valid func(T) bool, flip func(T) T, logger *zap.Logger) *Preference[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Preference[T]{
		store:   store,
		key:     key,
		def:     def,
		valid:   valid,
		flip:    flip,
		logger:  logger,
		watches: make(map[int]func(T)),
	}
}

// NewThemePreference defaults to the dark theme.
func NewThemePreference(store Store, logger *zap.Logger) *Preference[domain.Theme] {
	return newPreference(store, KeyTheme, domain.Dark, domain.Theme.Valid, func(t domain.Theme) domain.Theme {
		if t == domain.Dark {
			return domain.Light
		}
		return domain.Dark
	}, logger)
}

// NewUnitPreference defaults to pounds.
func NewUnitPreference(store Store, logger *zap.Logger) *Preference[domain.WeightUnit] {
	return newPreference(store, KeyWeightUnit, domain.Pounds, domain.WeightUnit.Valid, func(u domain.WeightUnit) domain.WeightUnit {
		if u == domain.Pounds {
			return domain.Kilograms
		}
		return domain.Pounds
	}, logger)
}

func (p *Preference[T]) read() T {
	if p.store == nil {
		return p.def
	}
	raw, ok, err := p.store.Get(p.key)
	if err != nil {
		p.logger.Warn("preference store unavailable, using default",
			zap.String("key", p.key), zap.Error(err))
		return p.def
	}
	if !ok || !p.valid(T(raw)) {
		return p.def
	}
	return T(raw)
}

func (p *Preference[T]) ensureLoaded() {
	if !p.loaded {
		p.value = p.read()
		p.loaded = true
	}
}

func (p *Preference[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoaded()
	return p.value
}

// Set stores v and notifies subscribers. Invalid values are ignored.
func (p *Preference[T]) Set(v T) {
	if !p.valid(v) {
		return
	}
	p.mu.Lock()
	p.ensureLoaded()
	p.value = v
	p.persist(v)
	watchers := p.snapshot()
	p.mu.Unlock()

	for _, fn := range watchers {
		fn(v)
	}
}

// Toggle flips between the two allowed values and returns the new one.
func (p *Preference[T]) Toggle() T {
	p.mu.Lock()
	p.ensureLoaded()
	v := p.flip(p.value)
	p.value = v
	p.persist(v)
	watchers := p.snapshot()
	p.mu.Unlock()

	for _, fn := range watchers {
		fn(v)
	}
	return v
}

// Reload discards the mirror and re-reads the store.
func (p *Preference[T]) Reload() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
	p.ensureLoaded()
	return p.value
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (p *Preference[T]) Subscribe(fn func(T)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.watches[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.watches, id)
	}
}

func (p *Preference[T]) persist(v T) {
	if p.store == nil {
		return
	}
	if err := p.store.Set(p.key, string(v)); err != nil {
		p.logger.Warn("failed to persist preference",
			zap.String("key", p.key), zap.String("value", string(v)), zap.Error(err))
	}
}

func (p *Preference[T]) snapshot() []func(T) {
	out := make([]func(T), 0, len(p.watches))
	for _, fn := range p.watches {
		out = append(out, fn)
	}
	return out
}
