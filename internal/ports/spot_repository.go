package ports

import (
	"coastal-day-planner/internal/domain"
	"context"
)

// Port: surf spots, the locations POIs and conditions hang off.
type SpotRepository interface {
	ListSpots(ctx context.Context) ([]domain.Spot, error)
	// Return the spot or an error wrapping domain.ErrNotFound.
	GetSpot(ctx context.Context, id string) (domain.Spot, error)
}
