package ingredients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSelection() *Selection {
	return NewSelectionFrom(map[string][]Candidate{
		"cena": {
			{Name: "Salmón", Selected: true},
			{Name: "Quinoa", Selected: false},
			{Name: "Espinacas", Selected: true},
		},
	})
}

func TestSelection_Toggle(t *testing.T) {
	s := testSelection()

	assert.True(t, s.Toggle("cena", "Quinoa"))
	assert.Equal(t, []string{"Salmón", "Quinoa", "Espinacas"}, s.SelectedNames("cena"))

	assert.False(t, s.Toggle("cena", "Tofu"))
	assert.False(t, s.Toggle("desayuno", "Avena"))
}

func TestSelection_ToggleAll_PartialSelectsAll(t *testing.T) {
	s := testSelection()
	s.ToggleAll("cena")
	assert.Equal(t, []string{"Salmón", "Quinoa", "Espinacas"}, s.SelectedNames("cena"))
}

func TestSelection_ToggleAll_AllSelectedClears(t *testing.T) {
	s := testSelection()
	s.ToggleAll("cena")
	s.ToggleAll("cena")
	assert.Empty(t, s.SelectedNames("cena"))
	assert.NotNil(t, s.SelectedNames("cena"))
}

func TestSelection_ToggleAllPairRestoresFullSelection(t *testing.T) {
	s := NewSelection()
	before := s.Candidates("almuerzo")

	s.ToggleAll("almuerzo")
	assert.Empty(t, s.SelectedNames("almuerzo"))
	s.ToggleAll("almuerzo")

	assert.Equal(t, before, s.Candidates("almuerzo"))
}

func TestSelection_SeedIsCopied(t *testing.T) {
	seed := DefaultMeals()
	s := NewSelectionFrom(seed)
	s.ToggleAll("desayuno")

	assert.True(t, seed["desayuno"][0].Selected)
	assert.True(t, DefaultMeals()["desayuno"][0].Selected)
}

func TestSelection_Meals(t *testing.T) {
	assert.Equal(t, []string{"almuerzo", "cena", "desayuno", "merienda"}, NewSelection().Meals())
	assert.Nil(t, NewSelection().Candidates("brunch"))
}

func TestSelection_Selected(t *testing.T) {
	s := testSelection()
	got := s.Selected("cena")
	assert.Len(t, got, 2)
	assert.Equal(t, "Espinacas", got[1].Name)
}
