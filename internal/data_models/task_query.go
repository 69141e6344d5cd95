package dto

import (
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "DESC"
)

// sortColumns maps accepted sortBy values (snake_case and camelCase) to columns.
var sortColumns = map[string]string{
	"id":              "id",
	"title":           "title",
	"status":          "status",
	"priority":        "priority",
	"assignee":        "assignee",
	"due_date":        "due_date",
	"dueDate":         "due_date",
	"started_at":      "started_at",
	"startedAt":       "started_at",
	"completed_at":    "completed_at",
	"completedAt":     "completed_at",
	"estimated_hours": "estimated_hours",
	"estimatedHours":  "estimated_hours",
	"actual_hours":    "actual_hours",
	"actualHours":     "actual_hours",
	"project_id":      "project_id",
	"projectId":       "project_id",
	"project_name":    "project_name",
	"projectName":     "project_name",
	"created_at":      "created_at",
	"createdAt":       "created_at",
	"updated_at":      "updated_at",
	"updatedAt":       "updated_at",
}

// SortColumn resolves a sortBy value to its column name.
func SortColumn(sortBy string) (string, bool) {
	col, ok := sortColumns[sortBy]
	return col, ok
}

// NormalizeSortOrder returns ASC or DESC, or false for anything else.
func NormalizeSortOrder(order string) (string, bool) {
	switch strings.ToUpper(order) {
	case "ASC":
		return "ASC", true
	case "DESC":
		return "DESC", true
	}
	return "", false
}

// TaskQuery is the typed form of the list endpoint's query string. SortBy
// holds the resolved column name.
type TaskQuery struct {
	Status    []constants.TaskStatus   `json:"status,omitempty"`
	Priority  []constants.TaskPriority `json:"priority,omitempty"`
	ProjectID []string                 `json:"project_id,omitempty"`
	Assignee  string                   `json:"assignee,omitempty"`
	Search    string                   `json:"search,omitempty"`
	Page      int                      `json:"page"`
	Limit     int                      `json:"limit"`
	SortBy    string                   `json:"sortBy"`
	SortOrder string                   `json:"sortOrder"`
}

func NewTaskQuery() TaskQuery {
	return TaskQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

func (q TaskQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q TaskQuery) Descending() bool {
	return q.SortOrder != "ASC"
}
