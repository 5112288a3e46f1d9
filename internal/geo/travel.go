package geo

import (
	"fmt"
	"math"

	"coastal-day-planner/internal/domain"
)

// TravelMinutes estimates whole minutes needed to cover distanceKm with mode,
// rounding up. Unknown modes and negative distances are input errors.
func TravelMinutes(distanceKm float64, mode domain.Mobility) (int, error) {
	speed, err := mode.SpeedKmPerHour()
	if err != nil {
		return 0, fmt.Errorf("travel minutes: %w", err)
	}

	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0, fmt.Errorf("travel minutes: distance %v: %w", distanceKm, domain.ErrInvalidInput)
	}

	return int(math.Ceil(distanceKm / speed * 60)), nil
}
