package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
	"github.com/yusufkecer/jarosmart-backend/internal/service"
)

type PreferencesHandler struct {
	svc *service.PreferencesService
}

func NewPreferencesHandler(svc *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.svc.FetchPreferences(r.Context()))
}

func (h *PreferencesHandler) Put(w http.ResponseWriter, r *http.Request) {
	var prefs domain.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, invalid("invalid request body"))
		return
	}
	writeResult(w, http.StatusOK, h.svc.SavePreferences(r.Context(), prefs))
}
