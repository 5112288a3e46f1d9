// Package memory holds in-process adapters backed by plain slices and maps.
// They serve tests and the offline dbtool commands.
package memory

import (
	"coastal-day-planner/internal/domain"
	"context"
	"fmt"
	"slices"
)

// Catalog implements ports.POICatalog and ports.SpotRepository.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	spots []domain.Spot
	pois  []domain.POI
}

// NewCatalog copies its inputs; slice order is the catalog order.
func NewCatalog(spots []domain.Spot, pois []domain.POI) *Catalog {
	return &Catalog{
		spots: slices.Clone(spots),
		pois:  slices.Clone(pois),
	}
}

func (c *Catalog) GetPOIsByLocation(ctx context.Context, locationID string) ([]domain.POI, error) {
	return c.GetPOIsByCategory(ctx, locationID, nil)
}

func (c *Catalog) GetPOIsByCategory(ctx context.Context, locationID string, categories []domain.Category) ([]domain.POI, error) {
	out := []domain.POI{}
	for _, p := range c.pois {
		if p.LocationID != locationID {
			continue
		}
		if len(categories) > 0 && !slices.Contains(categories, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Catalog) ListSpots(ctx context.Context) ([]domain.Spot, error) {
	return slices.Clone(c.spots), nil
}

func (c *Catalog) GetSpot(ctx context.Context, id string) (domain.Spot, error) {
	for _, s := range c.spots {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Spot{}, fmt.Errorf("get spot %q: %w", id, domain.ErrNotFound)
}
