package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-tracker.com/task-tracker/internal/constants"
)

var (
	earlier = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	now     = time.Date(2026, 1, 5, 15, 30, 0, 0, time.UTC)
)

func at(t time.Time) *time.Time { return &t }

func TestComputeDerivedTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		previous constants.TaskStatus
		next     constants.TaskStatus
		existing Timestamps
		want     Timestamps
	}{
		{
			name:     "first entry into in_progress stamps started_at",
			previous: constants.StatusTodo,
			next:     constants.StatusInProgress,
			want:     Timestamps{StartedAt: at(now)},
		},
		{
			name:     "re-entry into in_progress keeps started_at",
			previous: constants.StatusRejectedRevision,
			next:     constants.StatusInProgress,
			existing: Timestamps{StartedAt: at(earlier)},
			want:     Timestamps{StartedAt: at(earlier)},
		},
		{
			name:     "staying in_progress changes nothing",
			previous: constants.StatusInProgress,
			next:     constants.StatusInProgress,
			existing: Timestamps{StartedAt: at(earlier)},
			want:     Timestamps{StartedAt: at(earlier)},
		},
		{
			name:     "approval stamps completed_at",
			previous: constants.StatusPendingReview,
			next:     constants.StatusApproved,
			existing: Timestamps{StartedAt: at(earlier)},
			want:     Timestamps{StartedAt: at(earlier), CompletedAt: at(now)},
		},
		{
			name:     "todo straight to approved skips started_at",
			previous: constants.StatusTodo,
			next:     constants.StatusApproved,
			want:     Timestamps{CompletedAt: at(now)},
		},
		{
			name:     "leaving approved clears completed_at",
			previous: constants.StatusApproved,
			next:     constants.StatusRejectedRevision,
			existing: Timestamps{StartedAt: at(earlier), CompletedAt: at(earlier)},
			want:     Timestamps{StartedAt: at(earlier)},
		},
		{
			name:     "approved to approved keeps completed_at",
			previous: constants.StatusApproved,
			next:     constants.StatusApproved,
			existing: Timestamps{CompletedAt: at(earlier)},
			want:     Timestamps{CompletedAt: at(earlier)},
		},
		{
			name:     "approved row without stamp is repaired",
			previous: constants.StatusApproved,
			next:     constants.StatusApproved,
			want:     Timestamps{CompletedAt: at(now)},
		},
		{
			name:     "in_progress back to todo clears started_at",
			previous: constants.StatusInProgress,
			next:     constants.StatusTodo,
			existing: Timestamps{StartedAt: at(earlier)},
			want:     Timestamps{},
		},
		{
			name:     "in_progress to cancelled keeps started_at",
			previous: constants.StatusInProgress,
			next:     constants.StatusCancelled,
			existing: Timestamps{StartedAt: at(earlier)},
			want:     Timestamps{StartedAt: at(earlier)},
		},
		{
			name:     "new task created as in_progress",
			previous: "",
			next:     constants.StatusInProgress,
			want:     Timestamps{StartedAt: at(now)},
		},
		{
			name:     "new task created as todo",
			previous: "",
			next:     constants.StatusTodo,
			want:     Timestamps{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDerivedTimestamps(tt.previous, tt.next, tt.existing, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDerivedTimestamps_CompletedIffApproved(t *testing.T) {
	for _, prev := range constants.Statuses() {
		for _, next := range constants.Statuses() {
			existing := Timestamps{}
			if prev == constants.StatusApproved {
				existing.CompletedAt = at(earlier)
			}

			got := ComputeDerivedTimestamps(prev, next, existing, now)

			if next == constants.StatusApproved {
				assert.NotNil(t, got.CompletedAt, "%s -> %s", prev, next)
			} else {
				assert.Nil(t, got.CompletedAt, "%s -> %s", prev, next)
			}
		}
	}
}

func TestComputeDerivedTimestamps_StartedAtSticksOutsideTodo(t *testing.T) {
	ts := ComputeDerivedTimestamps(constants.StatusTodo, constants.StatusInProgress, Timestamps{}, earlier)

	previous := constants.StatusInProgress
	for _, next := range []constants.TaskStatus{
		constants.StatusPendingReview,
		constants.StatusRejectedRevision,
		constants.StatusInProgress,
		constants.StatusApproved,
		constants.StatusCancelled,
	} {
		ts = ComputeDerivedTimestamps(previous, next, ts, now)
		assert.Equal(t, at(earlier), ts.StartedAt, "%s -> %s", previous, next)
		previous = next
	}
}

func TestComputeDerivedTimestamps_DoesNotAliasInput(t *testing.T) {
	existing := Timestamps{}
	got := ComputeDerivedTimestamps(constants.StatusTodo, constants.StatusInProgress, existing, now)
	assert.Nil(t, existing.StartedAt)
	assert.NotNil(t, got.StartedAt)
}
