package http

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// parseTaskQuery turns the list endpoint's query string into a TaskQuery,
// rejecting malformed paging, sorting and enum values.
func parseTaskQuery(values url.Values) (dto.TaskQuery, error) {
	q := dto.NewTaskQuery()

	for _, raw := range listParam(values, "status") {
		s := constants.TaskStatus(raw)
		if !s.Valid() {
			return q, invalidParam("status", fmt.Sprintf("unknown status %q", raw))
		}
		q.Status = append(q.Status, s)
	}

	for _, raw := range listParam(values, "priority") {
		p := constants.TaskPriority(raw)
		if !p.Valid() {
			return q, invalidParam("priority", fmt.Sprintf("unknown priority %q", raw))
		}
		q.Priority = append(q.Priority, p)
	}

	q.ProjectID = listParam(values, "project_id")
	q.Assignee = strings.TrimSpace(values.Get("assignee"))
	q.Search = strings.TrimSpace(values.Get("search"))

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, apperrors.ErrInvalidPage
		}
		q.Page = page
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > dto.MaxLimit {
			return q, apperrors.ErrInvalidLimit
		}
		q.Limit = limit
	}

	// (page-1)*limit must fit in an int.
	if q.Page-1 > math.MaxInt/q.Limit {
		return q, apperrors.ErrInvalidPage
	}

	if raw := strings.TrimSpace(values.Get("sortBy")); raw != "" {
		col, ok := dto.SortColumn(raw)
		if !ok {
			return q, invalidParam("sortBy", fmt.Sprintf("cannot sort by %q", raw))
		}
		q.SortBy = col
	}

	if raw := strings.TrimSpace(values.Get("sortOrder")); raw != "" {
		order, ok := dto.NormalizeSortOrder(raw)
		if !ok {
			return q, invalidParam("sortOrder", "sortOrder must be ASC or DESC")
		}
		q.SortOrder = order
	}

	return q, nil
}

// listParam collects name and name[] values, splitting comma-separated lists.
func listParam(values url.Values, name string) []string {
	var out []string
	seen := make(map[string]struct{})

	raws := make([]string, 0, len(values[name])+len(values[name+"[]"]))
	raws = append(raws, values[name]...)
	raws = append(raws, values[name+"[]"]...)

	for _, raw := range raws {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

func invalidParam(field, message string) error {
	return apperrors.NewValidationError(message, apperrors.FieldError{Field: field, Message: message})
}
