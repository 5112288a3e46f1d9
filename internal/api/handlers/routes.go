package handlers

import (
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/ports"
	"coastal-day-planner/internal/services"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type RouteHandler struct {
	Catalog ports.POICatalog
	Spots   ports.SpotRepository
}

// Route summarizes either an explicit stop list or a spot followed by the
// named POIs, in the order given.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var stops []domain.RouteStop
	switch {
	case len(req.Stops) > 0:
		if len(req.POIIDs) > 0 {
			writeError(w, r, http.StatusBadRequest, "use either stops or poi_ids, not both")
			return
		}
		stops = make([]domain.RouteStop, 0, len(req.Stops))
		for _, s := range req.Stops {
			stops = append(stops, domain.RouteStop{Lat: s.Lat, Lng: s.Lng, Name: s.Name})
		}

	case strings.TrimSpace(req.LocationID) != "":
		var err error
		stops, err = h.stopsFromPOIs(r.Context(), strings.TrimSpace(req.LocationID), req.POIIDs)
		if err != nil {
			writeServiceError(w, r, "route", err)
			return
		}

	default:
		writeError(w, r, http.StatusBadRequest, "stops or location_id is required")
		return
	}

	mode := domain.Mobility(strings.ToLower(strings.TrimSpace(req.Mobility)))
	info, err := services.CalculateRoute(stops, mode)
	if err != nil {
		writeServiceError(w, r, "route", err)
		return
	}

	res := dto.RouteResponse{
		Stops:     make([]dto.RouteStop, 0, len(info.Stops)),
		TotalKm:   info.TotalKm,
		TotalMins: info.TotalMins,
		Mobility:  string(info.Mobility),
	}
	for _, s := range info.Stops {
		res.Stops = append(res.Stops, dto.RouteStop{Lat: s.Lat, Lng: s.Lng, Name: s.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) stopsFromPOIs(ctx context.Context, locationID string, ids []string) ([]domain.RouteStop, error) {
	spot, err := h.Spots.GetSpot(ctx, locationID)
	if err != nil {
		return nil, err
	}

	all, err := h.Catalog.GetPOIsByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.POI, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	picked := make([]domain.POI, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[strings.TrimSpace(id)]
		if !ok {
			return nil, fmt.Errorf("poi %q at %q: %w", id, locationID, domain.ErrNotFound)
		}
		picked = append(picked, p)
	}

	return services.RouteFromPOIs(spot, picked), nil
}
