package memory

import (
	"coastal-day-planner/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogKeepsInsertionOrder(t *testing.T) {
	cat := NewCatalog(
		[]domain.Spot{{ID: "cijin", Name: "Cijin"}},
		[]domain.POI{
			{ID: "b", LocationID: "cijin", Category: domain.CategoryFood},
			{ID: "a", LocationID: "cijin", Category: domain.CategoryCafe},
			{ID: "x", LocationID: "dulan", Category: domain.CategoryFood},
			{ID: "c", LocationID: "cijin", Category: domain.CategoryFood},
		},
	)
	ctx := context.Background()

	all, err := cat.GetPOIsByLocation(ctx, "cijin")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(all))

	food, err := cat.GetPOIsByCategory(ctx, "cijin", []domain.Category{domain.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(food))

	none, err := cat.GetPOIsByLocation(ctx, "nowhere")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogGetSpotNotFound(t *testing.T) {
	cat := NewCatalog(nil, nil)
	_, err := cat.GetSpot(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func ids(pois []domain.POI) []string {
	out := make([]string, 0, len(pois))
	for _, p := range pois {
		out = append(out, p.ID)
	}
	return out
}
