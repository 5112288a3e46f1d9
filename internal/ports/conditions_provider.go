package ports

import (
	"coastal-day-planner/internal/domain"
	"context"
)

// Contract for the day's sea and weather summary at a location.
// Dates are calendar days formatted "YYYY-MM-DD".
type ConditionsProvider interface {
	GetSeaState(ctx context.Context, locationID, date string) (domain.SeaState, error)
	GetWeather(ctx context.Context, locationID, date string) (domain.Weather, error)
}

// Storage for condition summaries keyed by location and date.
// A miss is reported with found=false and a nil error.
type ConditionsCache interface {
	GetSeaState(ctx context.Context, locationID, date string) (sea domain.SeaState, found bool, err error)
	PutSeaState(ctx context.Context, sea domain.SeaState) error
	GetWeather(ctx context.Context, locationID, date string) (w domain.Weather, found bool, err error)
	PutWeather(ctx context.Context, w domain.Weather) error
}
