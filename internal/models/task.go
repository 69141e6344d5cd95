package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	Title          string                 `gorm:"size:100;not null" json:"title" validate:"required,max=100"`
	Description    *string                `gorm:"type:text" json:"description"`
	Priority       constants.TaskPriority `gorm:"type:varchar(10);not null;default:medium;index" json:"priority" validate:"required,oneof=low medium high"`
	Status         constants.TaskStatus   `gorm:"type:varchar(20);not null;default:todo;index" json:"status" validate:"required,oneof=todo in_progress pending_review approved rejected_revision cancelled"`
	Assignee       *string                `gorm:"size:50" json:"assignee" validate:"omitempty,max=50"`
	DueDate        *time.Time             `json:"due_date"`
	StartedAt      *time.Time             `json:"started_at"`
	CompletedAt    *time.Time             `json:"completed_at"`
	Tags           *string                `gorm:"size:200" json:"tags" validate:"omitempty,max=200"`
	EstimatedHours *float64               `gorm:"type:decimal(10,2)" json:"estimated_hours" validate:"omitempty,gte=0"`
	ActualHours    *float64               `gorm:"type:decimal(10,2)" json:"actual_hours" validate:"omitempty,gte=0"`
	ProjectID      *string                `gorm:"size:50;index" json:"project_id" validate:"omitempty,max=50"`
	ProjectName    *string                `gorm:"size:100" json:"project_name" validate:"omitempty,max=100"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
