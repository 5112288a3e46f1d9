package memory

import (
	"coastal-day-planner/internal/domain"
	"context"
	"fmt"
)

// StaticConditions serves fixed snapshots keyed by location and date.
// A missing key is an error, so tests notice unexpected lookups.
type StaticConditions struct {
	m map[string]domain.ConditionSnapshot
}

func NewStaticConditions(snaps []domain.ConditionSnapshot) *StaticConditions {
	m := make(map[string]domain.ConditionSnapshot, len(snaps))
	for _, s := range snaps {
		m[s.Sea.LocationID+"|"+s.Sea.Date] = s
	}
	return &StaticConditions{m: m}
}

func (s *StaticConditions) GetSeaState(ctx context.Context, locationID, date string) (domain.SeaState, error) {
	snap, ok := s.m[locationID+"|"+date]
	if !ok {
		return domain.SeaState{}, fmt.Errorf("missing conditions for %q on %s", locationID, date)
	}
	return snap.Sea, nil
}

func (s *StaticConditions) GetWeather(ctx context.Context, locationID, date string) (domain.Weather, error) {
	snap, ok := s.m[locationID+"|"+date]
	if !ok {
		return domain.Weather{}, fmt.Errorf("missing conditions for %q on %s", locationID, date)
	}
	return snap.Weather, nil
}
