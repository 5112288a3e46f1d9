package handlers

import (
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/geo"
	"coastal-day-planner/internal/ports"
	"coastal-day-planner/internal/services"
	"math"
	"net/http"
	"strconv"
	"strings"
)

type POIHandler struct {
	Catalog ports.POICatalog
	Spots   ports.SpotRepository
}

// List serves GET /pois?location=&categories=food,cafe&radius_km=.
// Every POI carries its distance from the spot.
func (h *POIHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()

	location := strings.TrimSpace(q.Get("location"))
	if location == "" {
		writeError(w, r, http.StatusBadRequest, "location is required")
		return
	}

	var cats []domain.Category
	if raw := strings.TrimSpace(q.Get("categories")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			c, err := domain.ParseCategory(part)
			if err != nil {
				writeServiceError(w, r, "list pois", err)
				return
			}
			cats = append(cats, c)
		}
	}

	radius := 0.0
	if raw := strings.TrimSpace(q.Get("radius_km")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			writeError(w, r, http.StatusBadRequest, "radius_km must be a non-negative number")
			return
		}
		radius = v
	}

	ctx := r.Context()

	spot, err := h.Spots.GetSpot(ctx, location)
	if err != nil {
		writeServiceError(w, r, "list pois", err)
		return
	}

	pois, err := h.Catalog.GetPOIsByCategory(ctx, location, cats)
	if err != nil {
		writeServiceError(w, r, "list pois", err)
		return
	}
	pois = services.FilterWithinRadius(spot, pois, radius)

	res := dto.ListPOIResponse{POIs: make([]dto.POIResponse, 0, len(pois))}
	for _, p := range pois {
		item := toPOIDTO(p)
		d := math.Round(geo.Distance(spot.Coordinates, p.Coordinates())*100) / 100
		item.DistanceKm = &d
		res.POIs = append(res.POIs, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
