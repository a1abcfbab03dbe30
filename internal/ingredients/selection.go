// Package ingredients tracks which ingredient candidates a user has picked
// for each meal before they are saved.
package ingredients

import (
	"sort"
	"sync"
)

type Candidate struct {
	Name     string `json:"nombre"`
	Category string `json:"categoria,omitempty"`
	Selected bool   `json:"selected"`
}

// DefaultMeals returns the seed candidates per meal. Every call returns a
// fresh copy.
func DefaultMeals() map[string][]Candidate {
	return map[string][]Candidate{
		"desayuno": {
			{Name: "Avena", Category: "Cereales", Selected: true},
			{Name: "Huevos", Category: "Proteínas", Selected: true},
			{Name: "Plátano", Category: "Frutas", Selected: true},
			{Name: "Yogur griego", Category: "Lácteos", Selected: true},
		},
		"almuerzo": {
			{Name: "Pechuga de pollo", Category: "Proteínas", Selected: true},
			{Name: "Arroz integral", Category: "Cereales", Selected: true},
			{Name: "Brócoli", Category: "Verduras", Selected: true},
			{Name: "Aceite de oliva", Category: "Grasas", Selected: true},
		},
		"cena": {
			{Name: "Salmón", Category: "Proteínas", Selected: true},
			{Name: "Quinoa", Category: "Cereales", Selected: true},
			{Name: "Espinacas", Category: "Verduras", Selected: true},
			{Name: "Aguacate", Category: "Grasas", Selected: true},
		},
		"merienda": {
			{Name: "Almendras", Category: "Frutos secos", Selected: true},
			{Name: "Manzana", Category: "Frutas", Selected: true},
		},
	}
}

// Selection holds meal -> ordered candidates. It is in-memory only.
type Selection struct {
	mu    sync.RWMutex
	meals map[string][]Candidate
}

// NewSelection seeds the selection with DefaultMeals.
func NewSelection() *Selection {
	return NewSelectionFrom(DefaultMeals())
}

func NewSelectionFrom(meals map[string][]Candidate) *Selection {
	copied := make(map[string][]Candidate, len(meals))
	for meal, items := range meals {
		copied[meal] = append([]Candidate(nil), items...)
	}
	return &Selection{meals: copied}
}

func (s *Selection) Meals() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.meals))
	for meal := range s.meals {
		out = append(out, meal)
	}
	sort.Strings(out)
	return out
}

// Candidates returns a copy of the candidates for meal, or nil if the meal is
// unknown.
func (s *Selection) Candidates(meal string) []Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.meals[meal]
	if !ok {
		return nil
	}
	return append([]Candidate(nil), items...)
}

// Toggle flips one ingredient. It reports false when meal or name is unknown.
func (s *Selection) Toggle(meal, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.meals[meal]
	for i := range items {
		if items[i].Name == name {
			items[i].Selected = !items[i].Selected
			return true
		}
	}
	return false
}

// ToggleAll clears every candidate of meal when all are selected and selects
// all of them otherwise.
func (s *Selection) ToggleAll(meal string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.meals[meal]
	all := true
	for _, it := range items {
		if !it.Selected {
			all = false
			break
		}
	}
	for i := range items {
		items[i].Selected = !all
	}
}

// SelectedNames returns the selected ingredient names for meal in order.
func (s *Selection) SelectedNames(meal string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []string{}
	for _, it := range s.meals[meal] {
		if it.Selected {
			out = append(out, it.Name)
		}
	}
	return out
}

// Selected returns the selected candidates for meal in order.
func (s *Selection) Selected(meal string) []Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Candidate{}
	for _, it := range s.meals[meal] {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}
