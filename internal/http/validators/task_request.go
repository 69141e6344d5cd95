package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const maxTitleLength = 100

// ValidateCreateTaskRequest trims r in place and checks it for a create call.
func ValidateCreateTaskRequest(r *dto.TaskRequestData) error {
	return validateTaskRequest(r, true)
}

// ValidateUpdateTaskRequest trims r in place and checks the fields present.
func ValidateUpdateTaskRequest(r *dto.TaskRequestData) error {
	return validateTaskRequest(r, false)
}

func validateTaskRequest(r *dto.TaskRequestData, create bool) error {
	trimAll(r)

	if create || r.Title.Set {
		if r.Title.Value == nil || *r.Title.Value == "" {
			return apperrors.NewValidationError("title is required",
				apperrors.FieldError{Field: "title", Message: "title is required"})
		}
		if utf8.RuneCountInString(*r.Title.Value) > maxTitleLength {
			msg := fmt.Sprintf("title must be at most %d characters", maxTitleLength)
			return apperrors.NewValidationError(msg, apperrors.FieldError{Field: "title", Message: msg})
		}
	}

	if r.Priority.Set {
		if r.Priority.Value == nil || !constants.TaskPriority(*r.Priority.Value).Valid() {
			return invalidEnum("priority", priorityValues())
		}
	}

	if r.Status.Set {
		if r.Status.Value == nil || !constants.TaskStatus(*r.Status.Value).Valid() {
			return invalidEnum("status", statusValues())
		}
	}

	return nil
}

// ValidateStatusRequest checks a quick status change and returns the status.
func ValidateStatusRequest(r *dto.StatusRequestData) (constants.TaskStatus, error) {
	status := constants.TaskStatus(strings.TrimSpace(r.Status))
	if status == "" {
		return "", apperrors.NewValidationError("status is required",
			apperrors.FieldError{Field: "status", Message: "status is required"})
	}
	if !status.Valid() {
		return "", invalidEnum("status", statusValues())
	}
	return status, nil
}

func invalidEnum(field string, values []string) error {
	msg := fmt.Sprintf("invalid %s, must be one of: %s", field, strings.Join(values, ", "))
	return apperrors.NewValidationError(msg, apperrors.FieldError{Field: field, Message: msg})
}

func statusValues() []string {
	out := make([]string, 0, 6)
	for _, s := range constants.Statuses() {
		out = append(out, string(s))
	}
	return out
}

func priorityValues() []string {
	out := make([]string, 0, 3)
	for _, p := range constants.Priorities() {
		out = append(out, string(p))
	}
	return out
}

// trimAll trims every string field. Optional fields left blank become null.
func trimAll(r *dto.TaskRequestData) {
	for _, f := range []*dto.StringField{&r.Title, &r.Priority, &r.Status} {
		trim(f, false)
	}
	for _, f := range []*dto.StringField{&r.Description, &r.Assignee, &r.Tags, &r.ProjectID, &r.ProjectName} {
		trim(f, true)
	}
}

func trim(f *dto.StringField, blankIsNull bool) {
	if f.Value == nil {
		return
	}
	v := strings.TrimSpace(*f.Value)
	if v == "" && blankIsNull {
		f.Value = nil
		return
	}
	f.Value = &v
}
