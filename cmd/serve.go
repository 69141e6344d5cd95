package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/ratelimit"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the task store and serves the task tracking HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		defer closeDatabase(db)

		limiter, closeLimiter, err := newRateLimitStore(cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		taskRepo := repository.NewTaskRepository(db)
		taskService := services.NewTaskService(taskRepo)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		handler := httpapi.NewHandler(taskService, log)
		httpapi.Register(e, handler, log, httpapi.RouterConfig{
			Development:      cfg.IsDevelopment(),
			CORSAllowOrigins: cfg.CORSAllowOrigins,
			RateLimit:        limiter,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			log.Info("HTTP server listening", zap.String("addr", cfg.AppURL), zap.String("env", cfg.Environment))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
			return err
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newRateLimitStore shares counters through Redis when it is configured and
// keeps them in process otherwise.
func newRateLimitStore(cfg config.Config) (ratelimit.Store, func(), error) {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryStore(cfg.RateLimit, time.Minute), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	store := ratelimit.NewRedisStore(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
	return store, redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
