package services

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/geo"
)

// FilterWithinRadius keeps POIs no farther than radiusKm from the spot,
// preserving catalog order. A non-positive radius keeps everything.
func FilterWithinRadius(spot domain.Spot, pois []domain.POI, radiusKm float64) []domain.POI {
	if radiusKm <= 0 {
		return pois
	}

	out := make([]domain.POI, 0, len(pois))
	for _, p := range pois {
		if geo.Distance(spot.Coordinates, p.Coordinates()) <= radiusKm {
			out = append(out, p)
		}
	}
	return out
}
