package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
)

func strPtr(s string) *string { return &s }

func validTask() *Task {
	return &Task{
		Title:    "Write docs",
		Priority: constants.PriorityMedium,
		Status:   constants.StatusTodo,
	}
}

func TestTaskValidate_OK(t *testing.T) {
	task := validTask()
	task.Assignee = strPtr("alice")
	task.ProjectID = strPtr("core")

	violations, err := task.Validate()
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestTaskValidate_Violations(t *testing.T) {
	task := validTask()
	task.Title = ""
	task.Status = "done"
	task.Priority = "urgent"
	task.Assignee = strPtr(strings.Repeat("a", 51))
	hours := -1.0
	task.ActualHours = &hours

	violations, err := task.Validate()
	require.NoError(t, err)

	fields := make(map[string]string)
	for _, v := range violations {
		fields[v.Field] = v.Message
	}

	assert.Equal(t, "title is required", fields["title"])
	assert.Contains(t, fields["status"], "must be one of")
	assert.Contains(t, fields["priority"], "low, medium, high")
	assert.Equal(t, "assignee must be at most 50 characters", fields["assignee"])
	assert.Contains(t, fields, "actual_hours")
}

func TestTaskValidate_TitleLengthCountsCharacters(t *testing.T) {
	task := validTask()
	task.Title = strings.Repeat("é", 100)

	violations, err := task.Validate()
	require.NoError(t, err)
	assert.Empty(t, violations)

	task.Title = strings.Repeat("é", 101)
	violations, err = task.Validate()
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "title", violations[0].Field)
}
