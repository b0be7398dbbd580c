package goal

import (
	"ProjectWafeer/internal/entity"
	"math"
	"time"
)

// The ledger operations are pure: the input slice is never mutated and every
// mutation returns a fresh list, so the session store can swap collections
// wholesale.

// Add appends a new goal. Current defaults to zero, Target must be positive
// and Name non-empty.
func Add(goals []entity.Goal, g entity.Goal) ([]entity.Goal, error) {
	if g.Name == "" || g.Target <= 0 || g.Current < 0 {
		return nil, ErrInvalidGoal
	}
	if g.Deadline != "" {
		if _, err := time.Parse(entity.DateLayout, g.Deadline); err != nil {
			return nil, ErrInvalidDeadline
		}
	}
	if g.Recurring != nil && g.Recurring.Amount <= 0 {
		return nil, ErrInvalidGoal
	}

	next := make([]entity.Goal, len(goals), len(goals)+1)
	copy(next, goals)
	return append(next, g), nil
}

// UpdateTarget replaces the target of the goal with the given ID. An absent
// ID fails with ErrGoalNotFound rather than silently no-opping.
func UpdateTarget(goals []entity.Goal, id string, target float64) ([]entity.Goal, error) {
	if target <= 0 {
		return nil, ErrInvalidGoal
	}

	next := make([]entity.Goal, len(goals))
	copy(next, goals)
	for i := range next {
		if next[i].ID == id {
			next[i].Target = target
			return next, nil
		}
	}
	return nil, ErrGoalNotFound
}

func Remove(goals []entity.Goal, id string) ([]entity.Goal, error) {
	next := make([]entity.Goal, 0, len(goals))
	found := false
	for _, g := range goals {
		if g.ID == id {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return nil, ErrGoalNotFound
	}
	return next, nil
}

// ProgressPercent clamps to 100 for over-funded goals.
func ProgressPercent(g entity.Goal) int {
	if g.Target <= 0 {
		return 0
	}
	p := int(math.Round(100 * g.Current / g.Target))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}

// DueOn filters goals whose deadline matches the calendar day exactly. The
// calendar view uses this to badge days.
func DueOn(goals []entity.Goal, day string) []entity.Goal {
	var due []entity.Goal
	for _, g := range goals {
		if g.Deadline != "" && g.Deadline == day {
			due = append(due, g)
		}
	}
	return due
}
