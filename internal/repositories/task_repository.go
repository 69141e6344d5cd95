package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := checkRow(task); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// Mutate loads the row, lets fn change it and writes it back in one
// transaction. fn sees the stored state immediately prior to the write.
func (r *TaskRepository) Mutate(ctx context.Context, id uint, fn func(task *model.Task) error) (*model.Task, error) {
	var task model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(lockingClause(tx)...).First(&task, id).Error; err != nil {
			return translate(err)
		}
		if err := fn(&task); err != nil {
			return err
		}
		if err := checkRow(&task); err != nil {
			return err
		}
		if err := tx.Save(&task).Error; err != nil {
			return apperrors.NewStoreError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return apperrors.NewStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// List returns one page of tasks matching q and the total number of matches.
func (r *TaskRepository) List(ctx context.Context, q dto.TaskQuery) ([]model.Task, int64, error) {
	var total int64
	if err := r.filtered(ctx, q).Model(&model.Task{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}

	tasks := make([]model.Task, 0, q.Limit)
	err := r.filtered(ctx, q).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortBy}, Desc: q.Descending()}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: q.Descending()}).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}

	return tasks, total, nil
}

func (r *TaskRepository) filtered(ctx context.Context, q dto.TaskQuery) *gorm.DB {
	db := r.db.WithContext(ctx)

	if len(q.Status) > 0 {
		db = db.Where("status IN ?", q.Status)
	}
	if len(q.Priority) > 0 {
		db = db.Where("priority IN ?", q.Priority)
	}
	if len(q.ProjectID) > 0 {
		db = db.Where("project_id IN ?", q.ProjectID)
	}
	if q.Assignee != "" {
		db = db.Where(r.contains("assignee"), q.Assignee)
	}
	if q.Search != "" {
		db = db.Where(
			r.db.Where(r.contains("title"), q.Search).
				Or(r.contains("description"), q.Search).
				Or(r.contains("tags"), q.Search),
		)
	}

	return db
}

// contains builds a case-sensitive substring predicate for column. LIKE is
// case-insensitive on SQLite, so position functions are used instead.
func (r *TaskRepository) contains(column string) string {
	switch r.db.Dialector.Name() {
	case "postgres":
		return "strpos(" + column + ", ?) > 0"
	default:
		return "instr(" + column + ", ?) > 0"
	}
}

type ProjectGroup struct {
	ProjectID   *string
	ProjectName *string
	TaskCount   int64
}

// ProjectGroups returns one row per distinct (project_id, project_name) pair
// that has at least one of the two set.
func (r *TaskRepository) ProjectGroups(ctx context.Context) ([]ProjectGroup, error) {
	var rows []ProjectGroup
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("project_id, project_name, COUNT(*) AS task_count").
		Where("(project_name IS NOT NULL AND project_name <> '') OR (project_id IS NOT NULL AND project_id <> '')").
		Group("project_id, project_name").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return rows, nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&total).Error; err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	return total, nil
}

type groupCount struct {
	Value string
	Total int64
}

func (r *TaskRepository) CountByStatus(ctx context.Context) (map[constants.TaskStatus]int64, error) {
	rows, err := r.countBy(ctx, "status")
	if err != nil {
		return nil, err
	}
	out := make(map[constants.TaskStatus]int64, len(rows))
	for _, row := range rows {
		out[constants.TaskStatus(row.Value)] = row.Total
	}
	return out, nil
}

func (r *TaskRepository) CountByPriority(ctx context.Context) (map[constants.TaskPriority]int64, error) {
	rows, err := r.countBy(ctx, "priority")
	if err != nil {
		return nil, err
	}
	out := make(map[constants.TaskPriority]int64, len(rows))
	for _, row := range rows {
		out[constants.TaskPriority(row.Value)] = row.Total
	}
	return out, nil
}

func (r *TaskRepository) countBy(ctx context.Context, column string) ([]groupCount, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(column + " AS value, COUNT(*) AS total").
		Group(column).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return rows, nil
}

// CountOverdue counts open tasks whose due date lies before now.
func (r *TaskRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("due_date IS NOT NULL AND due_date < ?", now).
		Where("status NOT IN ?", []constants.TaskStatus{constants.StatusApproved, constants.StatusCancelled}).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	return total, nil
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}

func checkRow(task *model.Task) error {
	violations, err := task.Validate()
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if len(violations) == 0 {
		return nil
	}

	fields := make([]apperrors.FieldError, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, apperrors.FieldError{Field: v.Field, Message: v.Message})
	}
	return apperrors.NewValidationError("validation failed", fields...)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return apperrors.NewStoreError(err)
}

// lockingClause takes a row lock where the dialect supports one. SQLite
// serialises writers per database, so it needs none.
func lockingClause(tx *gorm.DB) []clause.Expression {
	if tx.Dialector.Name() == "postgres" {
		return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
	}
	return nil
}
