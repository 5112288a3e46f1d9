package conditions

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/ports"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// FallbackProvider asks the primary first and, on any error other than bad
// input or cancellation, logs a warning and answers from the fallback.
type FallbackProvider struct {
	primary  ports.ConditionsProvider
	fallback ports.ConditionsProvider
}

func NewFallbackProvider(primary, fallback ports.ConditionsProvider) *FallbackProvider {
	return &FallbackProvider{primary: primary, fallback: fallback}
}

func (f *FallbackProvider) GetSeaState(ctx context.Context, locationID, date string) (domain.SeaState, error) {
	sea, err := f.primary.GetSeaState(ctx, locationID, date)
	if err == nil || !shouldFallBack(ctx, err) {
		return sea, err
	}

	log.Warn().Err(err).Str("location", locationID).Str("date", date).Msg("sea state primary failed, using fallback")

	sea, ferr := f.fallback.GetSeaState(ctx, locationID, date)
	if ferr != nil {
		return domain.SeaState{}, fmt.Errorf("sea state fallback: %w", errors.Join(err, ferr))
	}
	return sea, nil
}

func (f *FallbackProvider) GetWeather(ctx context.Context, locationID, date string) (domain.Weather, error) {
	w, err := f.primary.GetWeather(ctx, locationID, date)
	if err == nil || !shouldFallBack(ctx, err) {
		return w, err
	}

	log.Warn().Err(err).Str("location", locationID).Str("date", date).Msg("weather primary failed, using fallback")

	w, ferr := f.fallback.GetWeather(ctx, locationID, date)
	if ferr != nil {
		return domain.Weather{}, fmt.Errorf("weather fallback: %w", errors.Join(err, ferr))
	}
	return w, nil
}

func shouldFallBack(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrNotFound)
}
