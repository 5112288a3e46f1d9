package services

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/ports"
	"context"
	"fmt"
	"time"
)

// IsOpen reports whether the POI is open at t. A POI without schedule data is
// treated as open; a weekday with no periods is closed.
func IsOpen(ctx context.Context, hours ports.OpenHoursProvider, poiID string, at time.Time) (bool, error) {
	sched, err := hours.GetOpenHours(ctx, poiID)
	if err != nil {
		return false, fmt.Errorf("is open: get hours for %q: %w", poiID, err)
	}
	return sched.IsOpenAt(at), nil
}

// Check every POI-backed entry of a built plan against operating hours and
// return one warning per entry whose POI is closed at the entry start.
//
// This is an overlay for callers; BuildItinerary never consults hours.
// The plan is not modified.
func CheckAvailability(ctx context.Context, plan *domain.PlanDay, hours ports.OpenHoursProvider) ([]string, error) {
	day, err := time.Parse(dateLayout, plan.Date)
	if err != nil {
		return nil, fmt.Errorf("check availability: date %q: %w", plan.Date, domain.ErrInvalidInput)
	}

	var warnings []string
	for _, e := range plan.Timeline {
		if e.POIID == "" {
			continue
		}

		at := day.Add(time.Duration(e.Start) * time.Minute)
		open, err := IsOpen(ctx, hours, e.POIID, at)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
		if !open {
			warnings = append(warnings, fmt.Sprintf(
				"%s may be closed at %s on %s",
				e.Label(), e.Start, at.Weekday(),
			))
		}
	}
	return warnings, nil
}
