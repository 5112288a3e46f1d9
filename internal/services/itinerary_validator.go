package services

import (
	"coastal-day-planner/internal/domain"
	"fmt"
	"math"
)

const (
	windWarnMS      = 12.0
	rainfallWarnPct = 50.0
)

// ValidatePlan appends warnings to plan in a fixed order: budget, overlaps,
// then weather hazards when a snapshot is given. Entries are never touched.
func ValidatePlan(plan *domain.PlanDay, snapshot *domain.ConditionSnapshot) {
	plan.Warnings = append(plan.Warnings, BudgetWarnings(plan)...)
	plan.Warnings = append(plan.Warnings, OverlapWarnings(plan)...)
	if snapshot != nil {
		plan.Warnings = append(plan.Warnings, ConditionWarnings(snapshot.Weather, plan.Mobility)...)
	}
}

// BudgetWarnings reports an overrun when the estimated total exceeds the budget.
func BudgetWarnings(plan *domain.PlanDay) []string {
	if plan.Budget == nil || plan.EstimatedTotalCost <= *plan.Budget {
		return nil
	}
	return []string{fmt.Sprintf("Estimated cost %d exceeds budget %d", plan.EstimatedTotalCost, *plan.Budget)}
}

// OverlapWarnings emits one warning per adjacent pair whose times collide.
func OverlapWarnings(plan *domain.PlanDay) []string {
	var out []string
	for i := 0; i+1 < len(plan.Timeline); i++ {
		cur, next := plan.Timeline[i], plan.Timeline[i+1]
		if cur.End > next.Start {
			out = append(out, fmt.Sprintf("%s overlaps with %s", cur.Label(), next.Label()))
		}
	}
	return out
}

// ConditionWarnings flags strong wind and likely rain.
func ConditionWarnings(w domain.Weather, mode domain.Mobility) []string {
	var out []string

	if w.WindSpeedMS > windWarnMS {
		if mode.TwoWheeled() {
			out = append(out, fmt.Sprintf("Wind %.1f m/s is strong; ride the %s with care", w.WindSpeedMS, mode))
		} else {
			out = append(out, fmt.Sprintf("Wind %.1f m/s is strong; take care outdoors", w.WindSpeedMS))
		}
	}

	if w.RainfallPct > rainfallWarnPct {
		out = append(out, fmt.Sprintf("Rain chance %d%%; bring rain gear", int(math.Round(w.RainfallPct))))
	}

	return out
}
