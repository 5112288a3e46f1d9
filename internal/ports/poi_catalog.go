package ports

import (
	"coastal-day-planner/internal/domain"
	"context"
)

// Port: read-only lookup of POIs keyed by location.
//
// Results are ordered by catalog insertion order. The planner picks the first
// match per category, so adapters must keep that order stable.
type POICatalog interface {
	// Return every POI attached to a location.
	GetPOIsByLocation(ctx context.Context, locationID string) ([]domain.POI, error)
	// Return POIs of the given categories. An empty list means all categories.
	GetPOIsByCategory(ctx context.Context, locationID string, categories []domain.Category) ([]domain.POI, error)
}
