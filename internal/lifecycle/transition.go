// Package lifecycle derives the started_at/completed_at stamps of a task from
// its status changes. It is pure: callers supply the clock.
package lifecycle

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// Timestamps holds the derived fields of a task.
type Timestamps struct {
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// ComputeDerivedTimestamps returns the timestamps a task must carry after its
// status moves from previous to next. previous is empty for a task that is
// being created.
func ComputeDerivedTimestamps(previous, next constants.TaskStatus, existing Timestamps, now time.Time) Timestamps {
	out := existing

	if next == constants.StatusInProgress && previous != constants.StatusInProgress && out.StartedAt == nil {
		out.StartedAt = stamp(now)
	}

	// completed_at is non-null iff the task is approved; a missing stamp on an
	// approved row is repaired here too.
	if next == constants.StatusApproved && (previous != constants.StatusApproved || out.CompletedAt == nil) {
		out.CompletedAt = stamp(now)
	}

	if previous == constants.StatusApproved && next != constants.StatusApproved {
		out.CompletedAt = nil
	}

	if previous == constants.StatusInProgress && next == constants.StatusTodo {
		out.StartedAt = nil
	}

	return out
}

func stamp(now time.Time) *time.Time {
	t := now
	return &t
}
