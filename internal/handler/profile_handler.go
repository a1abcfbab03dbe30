package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yusufkecer/jarosmart-backend/internal/service"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.svc.FetchProfile(r.Context()))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, invalid("invalid request body"))
		return
	}
	writeResult(w, http.StatusOK, h.svc.UpdateProfile(r.Context(), fields))
}
