package services

import (
	"context"
	"sort"
	"time"

	"github.com/gosimple/slug"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	"task-tracker.com/task-tracker/internal/lifecycle"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used for derived timestamps.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

// CreateTask persists a new task from a validated request. Status defaults to
// todo and priority to medium.
func (s *TaskService) CreateTask(ctx context.Context, req *dto.TaskRequestData) (*model.Task, error) {
	task := &model.Task{
		Priority: constants.PriorityMedium,
		Status:   constants.StatusTodo,
	}
	req.ApplyTo(task)
	applyTransition(task, "", s.now())

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateTask applies the present fields of req and re-derives timestamps
// against the status stored just before the write.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, req *dto.TaskRequestData) (*model.Task, error) {
	return s.repo.Mutate(ctx, id, func(task *model.Task) error {
		previous := task.Status
		req.ApplyTo(task)
		applyTransition(task, previous, s.now())
		return nil
	})
}

func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status constants.TaskStatus) (*model.Task, error) {
	return s.repo.Mutate(ctx, id, func(task *model.Task) error {
		previous := task.Status
		task.Status = status
		applyTransition(task, previous, s.now())
		return nil
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, q dto.TaskQuery) (*dto.TaskList, error) {
	tasks, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &dto.TaskList{
		Tasks:      dto.NewTaskResponses(tasks),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
		Filters:    q,
	}, nil
}

// ListProjects derives projects from task rows, one entry per project name.
// A name seen with several ids keeps the smallest; a name with none gets a
// slug of itself as id.
func (s *TaskService) ListProjects(ctx context.Context) ([]dto.ProjectSummary, error) {
	groups, err := s.repo.ProjectGroups(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*dto.ProjectSummary)
	for _, g := range groups {
		id := deref(g.ProjectID)
		name := deref(g.ProjectName)
		if name == "" {
			name = id
		}

		p, ok := byName[name]
		if !ok {
			p = &dto.ProjectSummary{Name: name}
			byName[name] = p
		}
		if id != "" && (p.ID == "" || id < p.ID) {
			p.ID = id
		}
		p.TaskCount += g.TaskCount
	}

	out := make([]dto.ProjectSummary, 0, len(byName))
	for _, p := range byName {
		if p.ID == "" {
			p.ID = slug.Make(p.Name)
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *TaskService) Stats(ctx context.Context) (*dto.TaskStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.repo.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := s.repo.CountOverdue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	stats := &dto.TaskStats{
		Total:          total,
		ByStatus:       make(map[string]int64),
		ByPriority:     make(map[string]int64),
		CompletionRate: dto.CompletionRate(byStatus[constants.StatusApproved], total),
		Overdue:        overdue,
	}
	for _, st := range constants.Statuses() {
		stats.ByStatus[string(st)] = byStatus[st]
	}
	for _, p := range constants.Priorities() {
		stats.ByPriority[string(p)] = byPriority[p]
	}

	return stats, nil
}

func (s *TaskService) Health(ctx context.Context) (*dto.HealthStatus, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HealthStatus{
		Status:    "ok",
		Database:  "connected",
		TaskCount: total,
		Timestamp: s.now(),
	}, nil
}

func applyTransition(task *model.Task, previous constants.TaskStatus, now time.Time) {
	ts := lifecycle.ComputeDerivedTimestamps(previous, task.Status, lifecycle.Timestamps{
		StartedAt:   task.StartedAt,
		CompletedAt: task.CompletedAt,
	}, now)
	task.StartedAt = ts.StartedAt
	task.CompletedAt = ts.CompletedAt
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
