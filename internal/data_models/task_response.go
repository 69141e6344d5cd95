package dto

import (
	"math"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

// TaskResponse is a task plus its display-only fields.
type TaskResponse struct {
	model.Task
	StatusText   string   `json:"statusText"`
	PriorityText string   `json:"priorityText"`
	Duration     *float64 `json:"duration"`
}

func NewTaskResponse(task model.Task) TaskResponse {
	return TaskResponse{
		Task:         task,
		StatusText:   task.Status.Label(),
		PriorityText: task.Priority.Label(),
		Duration:     durationDays(task.StartedAt, task.CompletedAt),
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

func durationDays(start, end *time.Time) *float64 {
	if start == nil || end == nil {
		return nil
	}
	days := round2(end.Sub(*start).Hours() / 24)
	return &days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type StatusChangeResponse struct {
	ID          uint                 `json:"id"`
	Status      constants.TaskStatus `json:"status"`
	StatusText  string               `json:"statusText"`
	StartedAt   *time.Time           `json:"started_at"`
	CompletedAt *time.Time           `json:"completed_at"`
}

func NewStatusChangeResponse(task model.Task) StatusChangeResponse {
	return StatusChangeResponse{
		ID:          task.ID,
		Status:      task.Status,
		StatusText:  task.Status.Label(),
		StartedAt:   task.StartedAt,
		CompletedAt: task.CompletedAt,
	}
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

type TaskList struct {
	Tasks      []TaskResponse
	Pagination Pagination
	Filters    TaskQuery
}

type ProjectSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount int64  `json:"taskCount"`
}

type TaskStats struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	ByPriority     map[string]int64 `json:"byPriority"`
	CompletionRate float64          `json:"completionRate"`
	Overdue        int64            `json:"overdue"`
}

// CompletionRate is the approved share of total as a percentage with two decimals.
func CompletionRate(approved, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(approved) / float64(total) * 100)
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	TaskCount int64     `json:"taskCount"`
	Timestamp time.Time `json:"timestamp"`
}
