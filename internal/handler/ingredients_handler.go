package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
	"github.com/yusufkecer/jarosmart-backend/internal/ingredients"
	"github.com/yusufkecer/jarosmart-backend/internal/service"
)

type IngredientsHandler struct {
	svc *service.IngredientsService
}

func NewIngredientsHandler(svc *service.IngredientsService) *IngredientsHandler {
	return &IngredientsHandler{svc: svc}
}

func (h *IngredientsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.svc.FetchIngredients(r.Context()))
}

// Create saves the selected entries of the request. Entries sent without a
// selected flag are taken as selected.
func (h *IngredientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw struct {
		Meal        string            `json:"comida"`
		Ingredients []json.RawMessage `json:"ingredientes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, invalid("invalid request body"))
		return
	}

	var selected []ingredients.Candidate
	for _, msg := range raw.Ingredients {
		c := ingredients.Candidate{Selected: true}
		if err := json.Unmarshal(msg, &c); err != nil {
			writeError(w, http.StatusBadRequest, invalid("invalid ingredient entry"))
			return
		}
		if c.Selected {
			selected = append(selected, c)
		}
	}

	writeResult(w, http.StatusOK, h.svc.SaveIngredients(r.Context(), selected, raw.Meal))
}

// Defaults returns the seed candidates per meal for the selection screen.
func (h *IngredientsHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, domain.Ok(ingredients.DefaultMeals()))
}
