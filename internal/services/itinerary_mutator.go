package services

import (
	"coastal-day-planner/internal/domain"
	"fmt"
	"slices"
	"strings"
)

type EditAction string

const (
	EditReplace EditAction = "replace"
	EditRemove  EditAction = "remove"
	EditAdd     EditAction = "add"
)

func ParseEditAction(s string) (EditAction, error) {
	a := EditAction(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case EditReplace, EditRemove, EditAdd:
		return a, nil
	}
	return "", fmt.Errorf("parse edit action %q: %w", s, domain.ErrInvalidInput)
}

// Apply a single timeline edit and return the edited copy.
//
// The input plan is not modified. EstimatedTotalCost is recomputed from the
// resulting timeline on every call; warnings are carried over unchanged and
// the validator is not re-run.
//
// Bounds: replace needs 0 <= index < len, add needs 0 <= index <= len.
// remove with index >= len is a no-op. Negative indexes are rejected.
func ApplyEdit(plan *domain.PlanDay, action EditAction, index int, entry *domain.TimelineEntry) (*domain.PlanDay, error) {
	if plan == nil {
		return nil, fmt.Errorf("apply edit: plan must be non-nil: %w", domain.ErrInvalidInput)
	}
	if index < 0 {
		return nil, fmt.Errorf("apply edit: %s index %d: %w", action, index, domain.ErrInvalidInput)
	}

	out := plan.Clone()
	n := len(out.Timeline)

	switch action {
	case EditReplace:
		if index >= n {
			return nil, fmt.Errorf("apply edit: replace index %d out of range [0,%d): %w", index, n, domain.ErrInvalidInput)
		}
		if entry == nil {
			return nil, fmt.Errorf("apply edit: replace requires an entry: %w", domain.ErrInvalidInput)
		}
		out.Timeline[index] = entry.Clone()

	case EditRemove:
		if index < n {
			out.Timeline = slices.Delete(out.Timeline, index, index+1)
		}

	case EditAdd:
		if index > n {
			return nil, fmt.Errorf("apply edit: add index %d out of range [0,%d]: %w", index, n, domain.ErrInvalidInput)
		}
		if entry == nil {
			return nil, fmt.Errorf("apply edit: add requires an entry: %w", domain.ErrInvalidInput)
		}
		out.Timeline = slices.Insert(out.Timeline, index, entry.Clone())

	default:
		return nil, fmt.Errorf("apply edit: unknown action %q: %w", string(action), domain.ErrInvalidInput)
	}

	out.RecomputeTotal()
	return out, nil
}
