package ports

import (
	"coastal-day-planner/internal/domain"
	"context"
)

// Port: weekly operating hours per POI.
type OpenHoursProvider interface {
	// Return the POI's schedule. A POI without data yields an empty schedule
	// and a nil error.
	GetOpenHours(ctx context.Context, poiID string) (domain.WeeklySchedule, error)
}
