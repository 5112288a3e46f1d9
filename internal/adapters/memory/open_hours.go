package memory

import (
	"coastal-day-planner/internal/domain"
	"context"
)

// OpenHours implements ports.OpenHoursProvider from a fixed map.
type OpenHours struct {
	m map[string]domain.WeeklySchedule
}

func NewOpenHours(m map[string]domain.WeeklySchedule) *OpenHours {
	return &OpenHours{m: m}
}

func (o *OpenHours) GetOpenHours(ctx context.Context, poiID string) (domain.WeeklySchedule, error) {
	if s, ok := o.m[poiID]; ok {
		return s, nil
	}
	return domain.WeeklySchedule{}, nil
}
