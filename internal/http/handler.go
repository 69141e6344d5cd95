package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/logger"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	log         *zap.Logger
}

func NewHandler(taskService *services.TaskService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		taskService: taskService,
		log:         log,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	q, err := parseTaskQuery(c.QueryParams())
	if err != nil {
		return err
	}

	list, err := h.taskService.ListTasks(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       list.Tasks,
		Pagination: &list.Pagination,
		Filters:    &list.Filters,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", dto.NewTaskResponse(*task))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequestData
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		return err
	}

	logger.WithRequestID(ctx, h.log).Info("task created", zap.Uint("task_id", task.ID))
	return respond(c, http.StatusCreated, "Task created successfully", dto.NewTaskResponse(*task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequestData
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	task, err := h.taskService.UpdateTask(ctx, id, &req)
	if err != nil {
		return err
	}

	logger.WithRequestID(ctx, h.log).Info("task updated",
		zap.Uint("task_id", task.ID),
		zap.String("status", string(task.Status)),
	)
	return respond(c, http.StatusOK, "Task updated successfully", dto.NewTaskResponse(*task))
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.StatusRequestData
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	status, err := validators.ValidateStatusRequest(&req)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	task, err := h.taskService.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}

	logger.WithRequestID(ctx, h.log).Info("task status changed",
		zap.Uint("task_id", task.ID),
		zap.String("status", string(task.Status)),
	)
	return respond(c, http.StatusOK, "Task status updated successfully", dto.NewStatusChangeResponse(*task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		return err
	}

	logger.WithRequestID(ctx, h.log).Info("task deleted", zap.Uint("task_id", id))
	return respond(c, http.StatusOK, "Task deleted successfully", echo.Map{"id": id})
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.taskService.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", projects)
}

func (h *Handler) StatusOptions(c echo.Context) error {
	return respond(c, http.StatusOK, "", constants.StatusOptions())
}

func (h *Handler) PriorityOptions(c echo.Context) error {
	return respond(c, http.StatusOK, "", constants.PriorityOptions())
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.taskService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}

func (h *Handler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	health, err := h.taskService.Health(ctx)
	if err != nil {
		logger.WithRequestID(ctx, h.log).Warn("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, Envelope{
			Message: "Service unavailable",
			Data:    echo.Map{"status": "error", "database": "disconnected"},
		})
	}
	return respond(c, http.StatusOK, "", health)
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}

// bindJSON decodes the request body only; path and query values never
// leak into payload structs.
func bindJSON(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
			return err
		}
		return apperrors.ErrInvalidJSON
	}
	return nil
}
