package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/ratelimit"
)

type RouterConfig struct {
	Development      bool
	CORSAllowOrigins []string
	// RateLimit may be nil to disable rate limiting.
	RateLimit ratelimit.Store
}

func Register(e *echo.Echo, h *Handler, log *zap.Logger, cfg RouterConfig) {
	e.HTTPErrorHandler = NewErrorHandler(log, cfg.Development)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID(uuid.NewString))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	if cfg.RateLimit != nil {
		e.Use(middleware.RateLimiter(cfg.RateLimit, log))
	}

	api := e.Group("/api")

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/projects", h.ListProjects)
	api.GET("/tasks/options/status", h.StatusOptions)
	api.GET("/tasks/options/priority", h.PriorityOptions)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.PATCH("/tasks/:id/status", h.UpdateTaskStatus)

	api.GET("/projects", h.ListProjects)
	api.GET("/stats", h.Stats)
	api.GET("/health", h.Health)
}
