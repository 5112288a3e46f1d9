package services

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/geo"
	"fmt"
	"math"
)

// Summarize an ordered stop list for one mobility mode.
//
// Stops are visited in the given order; no reordering is attempted.
// TotalKm is rounded to one decimal. TotalMins sums the per-leg ceilings,
// so it can exceed the ceiling of the whole distance.
func CalculateRoute(stops []domain.RouteStop, mobility domain.Mobility) (*domain.RouteInfo, error) {
	if !mobility.Valid() {
		return nil, fmt.Errorf("calculate route: mobility %q: %w", string(mobility), domain.ErrInvalidInput)
	}

	totalKm := 0.0
	totalMins := 0

	for i := 1; i < len(stops); i++ {
		from, to := stops[i-1], stops[i]

		km := geo.DistanceKm(from.Lat, from.Lng, to.Lat, to.Lng)
		mins, err := geo.TravelMinutes(km, mobility)
		if err != nil {
			return nil, fmt.Errorf("calculate route: leg %d %q -> %q: %w", i, from.Name, to.Name, err)
		}

		totalKm += km
		totalMins += mins
	}

	return &domain.RouteInfo{
		Stops:     append([]domain.RouteStop{}, stops...),
		TotalKm:   math.Round(totalKm*10) / 10,
		TotalMins: totalMins,
		Mobility:  mobility,
	}, nil
}

// RouteFromPOIs builds a stop list that starts at the spot and then visits
// pois in order.
func RouteFromPOIs(spot domain.Spot, pois []domain.POI) []domain.RouteStop {
	name := spot.Name
	if name == "" {
		name = spot.ID
	}

	stops := make([]domain.RouteStop, 0, len(pois)+1)
	stops = append(stops, domain.RouteStop{Lat: spot.Coordinates.Lat, Lng: spot.Coordinates.Lng, Name: name})
	for _, p := range pois {
		stops = append(stops, domain.RouteStop{Lat: p.Lat, Lng: p.Lng, Name: p.Name})
	}
	return stops
}
