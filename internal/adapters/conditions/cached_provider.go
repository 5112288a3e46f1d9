package conditions

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/ports"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// CachedProvider serves from the cache and fills it on a miss. Cache write
// failures are logged and do not fail the lookup.
type CachedProvider struct {
	next  ports.ConditionsProvider
	cache ports.ConditionsCache
}

func NewCachedProvider(next ports.ConditionsProvider, cache ports.ConditionsCache) *CachedProvider {
	return &CachedProvider{next: next, cache: cache}
}

func (c *CachedProvider) GetSeaState(ctx context.Context, locationID, date string) (domain.SeaState, error) {
	if sea, found, err := c.cache.GetSeaState(ctx, locationID, date); err != nil {
		return domain.SeaState{}, fmt.Errorf("cached sea state: %w", err)
	} else if found {
		return sea, nil
	}

	sea, err := c.next.GetSeaState(ctx, locationID, date)
	if err != nil {
		return domain.SeaState{}, err
	}
	sea.LocationID, sea.Date = locationID, date

	if err := c.cache.PutSeaState(ctx, sea); err != nil {
		log.Warn().Err(err).Str("location", locationID).Str("date", date).Msg("store sea state in cache")
	}
	return sea, nil
}

func (c *CachedProvider) GetWeather(ctx context.Context, locationID, date string) (domain.Weather, error) {
	if w, found, err := c.cache.GetWeather(ctx, locationID, date); err != nil {
		return domain.Weather{}, fmt.Errorf("cached weather: %w", err)
	} else if found {
		return w, nil
	}

	w, err := c.next.GetWeather(ctx, locationID, date)
	if err != nil {
		return domain.Weather{}, err
	}
	w.LocationID, w.Date = locationID, date

	if err := c.cache.PutWeather(ctx, w); err != nil {
		log.Warn().Err(err).Str("location", locationID).Str("date", date).Msg("store weather in cache")
	}
	return w, nil
}
