package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}
func (brokenStore) Set(string, string) error { return errors.New("storage disabled") }
func (brokenStore) Delete(string) error      { return errors.New("storage disabled") }

func TestUnitPreference_DefaultsToPounds(t *testing.T) {
	p := NewUnitPreference(NewMemoryStore(), nil)
	assert.Equal(t, domain.Pounds, p.Get())
}

func TestUnitPreference_StoredValueOverridesDefault(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyWeightUnit, "kg"))

	p := NewUnitPreference(store, nil)
	assert.Equal(t, domain.Kilograms, p.Get())
}

func TestUnitPreference_InvalidStoredValueFallsBack(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyWeightUnit, "stone"))

	assert.Equal(t, domain.Pounds, NewUnitPreference(store, nil).Get())
}

func TestThemePreference_ToggleIsBinaryAndPersisted(t *testing.T) {
	store := NewMemoryStore()
	p := NewThemePreference(store, nil)

	assert.Equal(t, domain.Dark, p.Get())
	assert.Equal(t, domain.Light, p.Toggle())

	v, ok, err := store.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	assert.Equal(t, domain.Dark, p.Toggle())
}

func TestPreference_UnavailableStoreIsSilentlyDefaulted(t *testing.T) {
	p := NewUnitPreference(brokenStore{}, nil)
	assert.Equal(t, domain.Pounds, p.Get())

	assert.Equal(t, domain.Kilograms, p.Toggle())
	assert.Equal(t, domain.Kilograms, p.Get())
}

func TestPreference_SubscribeAndUnsubscribe(t *testing.T) {
	p := NewUnitPreference(NewMemoryStore(), nil)

	var seen []domain.WeightUnit
	unsubscribe := p.Subscribe(func(u domain.WeightUnit) { seen = append(seen, u) })

	p.Toggle()
	p.Set(domain.Pounds)
	unsubscribe()
	p.Toggle()

	assert.Equal(t, []domain.WeightUnit{domain.Kilograms, domain.Pounds}, seen)
}

func TestPreference_SetIgnoresInvalidValues(t *testing.T) {
	p := NewUnitPreference(NewMemoryStore(), nil)
	p.Set("stone")
	assert.Equal(t, domain.Pounds, p.Get())
}

func TestPreference_MirrorKeepsValueUntilReload(t *testing.T) {
	store := NewMemoryStore()
	a := NewThemePreference(store, nil)
	b := NewThemePreference(store, nil)

	assert.Equal(t, domain.Dark, b.Get())
	a.Toggle()

	assert.Equal(t, domain.Dark, b.Get())
	assert.Equal(t, domain.Light, b.Reload())
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	first := NewUnitPreference(NewFileStore(path), nil)
	assert.Equal(t, domain.Kilograms, first.Toggle())

	second := NewUnitPreference(NewFileStore(path), nil)
	assert.Equal(t, domain.Kilograms, second.Get())
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"))
	_, ok, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o644))

	_, _, err := NewFileStore(path).Get(KeyTheme)
	assert.Error(t, err)

	assert.Equal(t, domain.Dark, NewThemePreference(NewFileStore(path), nil).Get())
}

func TestFileStore_Delete(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, s.Set(KeySelectedPlan, "premium"))
	require.NoError(t, s.Delete(KeySelectedPlan))
	require.NoError(t, s.Delete(KeySelectedPlan))

	_, ok, err := s.Get(KeySelectedPlan)
	require.NoError(t, err)
	assert.False(t, ok)
}
