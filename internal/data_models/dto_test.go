package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

func TestTaskRequestData_Presence(t *testing.T) {
	var req TaskRequestData
	body := `{"title":" Write spec ","assignee":null,"estimated_hours":"2.5","actual_hours":"","due_date":"2026-03-01"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.True(t, req.Title.Set)
	assert.Equal(t, " Write spec ", *req.Title.Value)

	assert.True(t, req.Assignee.Set)
	assert.Nil(t, req.Assignee.Value)

	assert.False(t, req.Description.Set)

	require.NotNil(t, req.EstimatedHours.Value)
	assert.Equal(t, 2.5, *req.EstimatedHours.Value)

	assert.True(t, req.ActualHours.Set)
	assert.Nil(t, req.ActualHours.Value)

	require.NotNil(t, req.DueDate.Value)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *req.DueDate.Value)
}

func TestNumberField_AcceptsNumbers(t *testing.T) {
	var req TaskRequestData
	require.NoError(t, json.Unmarshal([]byte(`{"estimated_hours":4,"actual_hours":null}`), &req))
	assert.Equal(t, 4.0, *req.EstimatedHours.Value)
	assert.True(t, req.ActualHours.Set)
	assert.Nil(t, req.ActualHours.Value)
}

func TestFields_RejectGarbage(t *testing.T) {
	var req TaskRequestData
	assert.Error(t, json.Unmarshal([]byte(`{"estimated_hours":"lots"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"due_date":"tomorrow"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"title":42}`), &req))
}

func TestNumberField_RejectsNonFinite(t *testing.T) {
	for _, raw := range []string{`"Inf"`, `"+Infinity"`, `"-inf"`, `"NaN"`, `"1e400"`} {
		t.Run(raw, func(t *testing.T) {
			var f NumberField
			assert.EqualError(t, f.UnmarshalJSON([]byte(raw)), "expected a number")
			assert.Nil(t, f.Value)
		})
	}
}

func TestDateField_RFC3339(t *testing.T) {
	var req TaskRequestData
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":"2026-03-01T10:00:00+02:00"}`), &req))
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), *req.DueDate.Value)
}

func TestApplyTo_OnlyPresentFields(t *testing.T) {
	desc := "keep me"
	task := model.Task{
		Title:       "Old",
		Description: &desc,
		Priority:    constants.PriorityLow,
		Status:      constants.StatusTodo,
	}

	var req TaskRequestData
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","assignee":"bob","tags":null}`), &req))
	req.ApplyTo(&task)

	assert.Equal(t, "New", task.Title)
	assert.Equal(t, "keep me", *task.Description)
	assert.Equal(t, "bob", *task.Assignee)
	assert.Nil(t, task.Tags)
	assert.Equal(t, constants.PriorityLow, task.Priority)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total       int64
		page, limit int
		want        Pagination
	}{
		{0, 1, 10, Pagination{Total: 0, Page: 1, Limit: 10, TotalPages: 0}},
		{25, 1, 10, Pagination{Total: 25, Page: 1, Limit: 10, TotalPages: 3, HasNext: true}},
		{25, 3, 10, Pagination{Total: 25, Page: 3, Limit: 10, TotalPages: 3, HasPrev: true}},
		{30, 2, 10, Pagination{Total: 30, Page: 2, Limit: 10, TotalPages: 3, HasNext: true, HasPrev: true}},
		{5, 9, 10, Pagination{Total: 5, Page: 9, Limit: 10, TotalPages: 1, HasPrev: true}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewPagination(tt.total, tt.page, tt.limit))
	}
}

func TestNewTaskResponse(t *testing.T) {
	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	completed := started.Add(36 * time.Hour)

	resp := NewTaskResponse(model.Task{
		ID:          7,
		Title:       "Ship",
		Status:      constants.StatusApproved,
		Priority:    constants.PriorityHigh,
		StartedAt:   &started,
		CompletedAt: &completed,
	})

	assert.Equal(t, "Approved", resp.StatusText)
	assert.Equal(t, "High", resp.PriorityText)
	require.NotNil(t, resp.Duration)
	assert.Equal(t, 1.5, *resp.Duration)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(body, &flat))
	assert.Equal(t, "Ship", flat["title"])
	assert.Equal(t, 1.5, flat["duration"])
	assert.Contains(t, flat, "started_at")
}

func TestNewTaskResponse_NoDurationWithoutBothStamps(t *testing.T) {
	started := time.Now()
	resp := NewTaskResponse(model.Task{Status: constants.StatusInProgress, StartedAt: &started})
	assert.Nil(t, resp.Duration)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(0, 0))
	assert.Equal(t, 33.33, CompletionRate(1, 3))
	assert.Equal(t, 100.0, CompletionRate(4, 4))
}

func TestSortColumn(t *testing.T) {
	col, ok := SortColumn("dueDate")
	assert.True(t, ok)
	assert.Equal(t, "due_date", col)

	_, ok = SortColumn("title; DROP TABLE tasks")
	assert.False(t, ok)

	order, ok := NormalizeSortOrder("asc")
	assert.True(t, ok)
	assert.Equal(t, "ASC", order)

	_, ok = NormalizeSortOrder("sideways")
	assert.False(t, ok)
}
