package services

import (
	"coastal-day-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editablePlan() *domain.PlanDay {
	return &domain.PlanDay{
		LocationID: "cijin",
		Date:       "2024-06-15",
		Mobility:   domain.MobilityScooter,
		Timeline: []domain.TimelineEntry{
			{Type: domain.EntrySurf, Title: "Dawn surf", Start: clock("06:30"), End: clock("08:30")},
			{Type: domain.EntryCafe, Title: "Harbor Cafe", Start: clock("09:05"), End: clock("10:05"), BudgetCost: intPtr(200)},
			{Type: domain.EntryFood, Title: "Seafood Street", Start: clock("10:20"), End: clock("11:20"), BudgetCost: intPtr(350)},
		},
		EstimatedTotalCost: 550,
		Warnings:           []string{"kept"},
	}
}

func TestApplyEdit_RemoveRecomputesFromScratch(t *testing.T) {
	plan := editablePlan()
	plan.EstimatedTotalCost = 123456

	out, err := ApplyEdit(plan, EditRemove, 1, nil)
	require.NoError(t, err)

	require.Len(t, out.Timeline, 2)
	assert.Equal(t, "Seafood Street", out.Timeline[1].Title)
	assert.Equal(t, 350, out.EstimatedTotalCost)
	assert.Equal(t, []string{"kept"}, out.Warnings)

	// source untouched
	assert.Len(t, plan.Timeline, 3)
	assert.Equal(t, 123456, plan.EstimatedTotalCost)
}

func TestApplyEdit_RemoveOutOfRangeIsNoop(t *testing.T) {
	plan := editablePlan()
	plan.EstimatedTotalCost = 0

	for _, idx := range []int{3, 10} {
		out, err := ApplyEdit(plan, EditRemove, idx, nil)
		require.NoError(t, err)
		assert.Len(t, out.Timeline, 3)
		assert.Equal(t, 550, out.EstimatedTotalCost)
	}
}

func TestApplyEdit_Replace(t *testing.T) {
	plan := editablePlan()
	entry := &domain.TimelineEntry{Type: domain.EntryFood, Title: "Noodle Bar", Start: clock("10:20"), End: clock("11:20"), BudgetCost: intPtr(150)}

	out, err := ApplyEdit(plan, EditReplace, 2, entry)
	require.NoError(t, err)

	assert.Equal(t, "Noodle Bar", out.Timeline[2].Title)
	assert.Equal(t, 350, out.EstimatedTotalCost)

	*entry.BudgetCost = 999
	assert.Equal(t, 150, out.Timeline[2].Cost())
	assert.Equal(t, "Seafood Street", plan.Timeline[2].Title)
}

func TestApplyEdit_AddShiftsRight(t *testing.T) {
	plan := editablePlan()
	entry := &domain.TimelineEntry{Type: domain.EntryRental, Title: "Board Rental", Start: clock("06:00"), End: clock("06:20"), BudgetCost: intPtr(500)}

	out, err := ApplyEdit(plan, EditAdd, 0, entry)
	require.NoError(t, err)
	require.Len(t, out.Timeline, 4)
	assert.Equal(t, "Board Rental", out.Timeline[0].Title)
	assert.Equal(t, "Dawn surf", out.Timeline[1].Title)
	assert.Equal(t, 1050, out.EstimatedTotalCost)

	out, err = ApplyEdit(plan, EditAdd, 3, entry)
	require.NoError(t, err)
	assert.Equal(t, "Board Rental", out.Timeline[3].Title)
}

func TestApplyEdit_RejectsBadInput(t *testing.T) {
	entry := &domain.TimelineEntry{Type: domain.EntryView}

	cases := []struct {
		name   string
		action EditAction
		index  int
		entry  *domain.TimelineEntry
	}{
		{"replace past end", EditReplace, 3, entry},
		{"replace without entry", EditReplace, 0, nil},
		{"add past end", EditAdd, 4, entry},
		{"add without entry", EditAdd, 0, nil},
		{"negative remove", EditRemove, -1, nil},
		{"negative replace", EditReplace, -1, entry},
		{"unknown action", EditAction("swap"), 0, entry},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyEdit(editablePlan(), tc.action, tc.index, tc.entry)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParseEditAction(t *testing.T) {
	a, err := ParseEditAction(" Replace ")
	require.NoError(t, err)
	assert.Equal(t, EditReplace, a)

	_, err = ParseEditAction("move")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
