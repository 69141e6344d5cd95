package dto

import (
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

// TaskRequestData is the body of create and update calls. Every key is
// optional on the wire; create additionally requires a title.
type TaskRequestData struct {
	Title          StringField `json:"title"`
	Description    StringField `json:"description"`
	Priority       StringField `json:"priority"`
	Status         StringField `json:"status"`
	Assignee       StringField `json:"assignee"`
	DueDate        DateField   `json:"due_date"`
	Tags           StringField `json:"tags"`
	EstimatedHours NumberField `json:"estimated_hours"`
	ActualHours    NumberField `json:"actual_hours"`
	ProjectID      StringField `json:"project_id"`
	ProjectName    StringField `json:"project_name"`
}

type StatusRequestData struct {
	Status string `json:"status"`
}

// ApplyTo copies every present field onto task. Status is copied as well; the
// caller derives timestamps from the previous value before calling.
func (r *TaskRequestData) ApplyTo(task *model.Task) {
	if r.Title.Set && r.Title.Value != nil {
		task.Title = *r.Title.Value
	}
	if r.Priority.Set && r.Priority.Value != nil {
		task.Priority = constants.TaskPriority(*r.Priority.Value)
	}
	if r.Status.Set && r.Status.Value != nil {
		task.Status = constants.TaskStatus(*r.Status.Value)
	}
	if r.Description.Set {
		task.Description = r.Description.Value
	}
	if r.Assignee.Set {
		task.Assignee = r.Assignee.Value
	}
	if r.DueDate.Set {
		task.DueDate = r.DueDate.Value
	}
	if r.Tags.Set {
		task.Tags = r.Tags.Value
	}
	if r.EstimatedHours.Set {
		task.EstimatedHours = r.EstimatedHours.Value
	}
	if r.ActualHours.Set {
		task.ActualHours = r.ActualHours.Value
	}
	if r.ProjectID.Set {
		task.ProjectID = r.ProjectID.Value
	}
	if r.ProjectName.Set {
		task.ProjectName = r.ProjectName.Value
	}
}
