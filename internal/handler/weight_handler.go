package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yusufkecer/jarosmart-backend/internal/service"
	"github.com/yusufkecer/jarosmart-backend/internal/units"
)

type WeightHandler struct {
	svc *service.WeightHistoryService
}

func NewWeightHandler(svc *service.WeightHistoryService) *WeightHandler {
	return &WeightHandler{svc: svc}
}

// addWeightRequest carries the weight in Unit (kilograms when empty).
type addWeightRequest struct {
	Weight float64 `json:"peso"`
	Unit   string  `json:"unidad"`
	Notes  *string `json:"notas"`
}

func (h *WeightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, invalid("invalid request body"))
		return
	}

	unit := units.Canonical
	if req.Unit != "" {
		u, err := units.ParseUnit(req.Unit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		unit = u
	}

	kg := units.ConvertWeight(req.Weight, unit, units.Canonical)
	writeResult(w, http.StatusCreated, h.svc.AddWeight(r.Context(), kg, req.Notes))
}

func (h *WeightHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, invalid("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	writeResult(w, http.StatusOK, h.svc.FetchWeightHistory(r.Context(), limit))
}

func (h *WeightHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.svc.FetchCurrentWeight(r.Context()))
}
