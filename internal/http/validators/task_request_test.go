package validators

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func decode(t *testing.T, body string) *dto.TaskRequestData {
	var req dto.TaskRequestData
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func fieldOf(t *testing.T, err error) string {
	var exc *apperrors.Exception
	require.True(t, errors.As(err, &exc))
	assert.Equal(t, 400, exc.StatusCode)
	require.NotEmpty(t, exc.Fields)
	return exc.Fields[0].Field
}

func TestValidateCreateTaskRequest(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing title", `{"description":"x"}`, "title"},
		{"blank title", `{"title":"   "}`, "title"},
		{"null title", `{"title":null}`, "title"},
		{"long title", `{"title":"` + strings.Repeat("a", 101) + `"}`, "title"},
		{"bad priority", `{"title":"ok","priority":"urgent"}`, "priority"},
		{"bad status", `{"title":"ok","status":"done"}`, "status"},
		{"null status", `{"title":"ok","status":null}`, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateTaskRequest(decode(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}

func TestValidateCreateTaskRequest_Trims(t *testing.T) {
	req := decode(t, `{"title":"  Write spec  ","assignee":"  ","tags":" docs ","status":" in_progress "}`)
	require.NoError(t, ValidateCreateTaskRequest(req))

	assert.Equal(t, "Write spec", *req.Title.Value)
	assert.True(t, req.Assignee.Set)
	assert.Nil(t, req.Assignee.Value)
	assert.Equal(t, "docs", *req.Tags.Value)
	assert.Equal(t, "in_progress", *req.Status.Value)
}

func TestValidateCreateTaskRequest_TitleAtLimit(t *testing.T) {
	req := decode(t, `{"title":"`+strings.Repeat("ü", 100)+`"}`)
	assert.NoError(t, ValidateCreateTaskRequest(req))
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	assert.NoError(t, ValidateUpdateTaskRequest(decode(t, `{}`)))
	assert.NoError(t, ValidateUpdateTaskRequest(decode(t, `{"priority":"low"}`)))

	err := ValidateUpdateTaskRequest(decode(t, `{"title":""}`))
	assert.Equal(t, "title", fieldOf(t, err))

	err = ValidateUpdateTaskRequest(decode(t, `{"priority":"HIGH"}`))
	assert.Equal(t, "priority", fieldOf(t, err))
}

func TestValidateStatusRequest(t *testing.T) {
	status, err := ValidateStatusRequest(&dto.StatusRequestData{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, status)

	_, err = ValidateStatusRequest(&dto.StatusRequestData{})
	assert.Equal(t, "status", fieldOf(t, err))

	_, err = ValidateStatusRequest(&dto.StatusRequestData{Status: "finished"})
	assert.Contains(t, err.Error(), "pending_review")
}
