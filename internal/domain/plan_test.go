package domain

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestPlanDayRecomputeTotal(t *testing.T) {
	// build test data
	plan := &PlanDay{
		LocationID: "cijin",
		Timeline: []TimelineEntry{
			{Type: EntrySurf, Start: 390, End: 510},
			{Type: EntryCafe, Title: "Cafe", Start: 520, End: 580, BudgetCost: intPtr(200)},
			{Type: EntryFood, Title: "Lunch", Start: 595, End: 655, BudgetCost: intPtr(350)},
		},
		EstimatedTotalCost: 9999,
	}

	// call the method under test
	plan.RecomputeTotal()

	// verify behavior
	if plan.EstimatedTotalCost != 550 {
		t.Fatalf("EstimatedTotalCost = %d, want 550", plan.EstimatedTotalCost)
	}
}

func TestPlanDayCloneDoesNotAlias(t *testing.T) {
	km := 1.2
	plan := &PlanDay{
		Budget: intPtr(1000),
		Timeline: []TimelineEntry{
			{Type: EntryCafe, BudgetCost: intPtr(200), Leg: &TravelLeg{Mode: MobilityWalk, Minutes: 10, Kilometers: &km}},
		},
		Warnings: []string{"w1"},
	}

	c := plan.Clone()
	*c.Budget = 1
	*c.Timeline[0].BudgetCost = 1
	*c.Timeline[0].Leg.Kilometers = 9
	c.Timeline[0].Title = "changed"
	c.Warnings[0] = "changed"

	if *plan.Budget != 1000 {
		t.Errorf("budget aliased: %d", *plan.Budget)
	}
	if *plan.Timeline[0].BudgetCost != 200 {
		t.Errorf("entry cost aliased: %d", *plan.Timeline[0].BudgetCost)
	}
	if *plan.Timeline[0].Leg.Kilometers != 1.2 {
		t.Errorf("leg km aliased: %v", *plan.Timeline[0].Leg.Kilometers)
	}
	if plan.Timeline[0].Title != "" {
		t.Errorf("title aliased: %q", plan.Timeline[0].Title)
	}
	if plan.Warnings[0] != "w1" {
		t.Errorf("warnings aliased: %q", plan.Warnings[0])
	}
}

func TestTimelineEntryLabelFallsBackToType(t *testing.T) {
	if got := (TimelineEntry{Type: EntrySurf}).Label(); got != "surf" {
		t.Fatalf("label = %q, want surf", got)
	}
	if got := (TimelineEntry{Type: EntrySurf, Title: "Dawn patrol"}).Label(); got != "Dawn patrol" {
		t.Fatalf("label = %q, want Dawn patrol", got)
	}
}

func TestWeeklyScheduleIsOpenAt(t *testing.T) {
	sched := WeeklySchedule{
		time.Monday:    {{Open: 11 * 60, Close: 14 * 60}, {Open: 17 * 60, Close: 21 * 60}},
		time.Wednesday: {},
	}

	// 2024-06-17 is a Monday.
	monday := func(h, m int) time.Time { return time.Date(2024, 6, 17, h, m, 0, 0, time.UTC) }

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before open", monday(10, 59), false},
		{"open boundary", monday(11, 0), true},
		{"close boundary", monday(14, 0), true},
		{"siesta", monday(15, 30), false},
		{"evening", monday(18, 0), true},
		{"closed weekday", time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC), false},
		{"weekday without entry", time.Date(2024, 6, 18, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		if got := sched.IsOpenAt(tc.at); got != tc.want {
			t.Errorf("%s: IsOpenAt = %v, want %v", tc.name, got, tc.want)
		}
	}

	if !(WeeklySchedule{}).IsOpenAt(monday(3, 0)) {
		t.Errorf("empty schedule should be treated as open")
	}
}
