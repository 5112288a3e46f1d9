package handlers

import (
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/ports"
	"net/http"
)

type SpotHandler struct {
	Spots ports.SpotRepository
}

// List returns every known spot in catalog order.
func (h *SpotHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	spots, err := h.Spots.ListSpots(r.Context())
	if err != nil {
		writeServiceError(w, r, "list spots", err)
		return
	}

	res := dto.ListSpotResponse{Spots: make([]dto.SpotResponse, 0, len(spots))}
	for _, s := range spots {
		res.Spots = append(res.Spots, toSpotDTO(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}
