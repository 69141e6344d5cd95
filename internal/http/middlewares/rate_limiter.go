package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"task-tracker.com/task-tracker/internal/logger"
	"task-tracker.com/task-tracker/internal/ratelimit"
)

// RateLimiter rejects clients that exceed the store's window with 429. When
// the store itself fails the request is let through.
func RateLimiter(store ratelimit.Store, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := c.RealIP()

			allowed, err := store.Allow(ctx, key)
			if err != nil {
				logger.WithRequestID(ctx, log).Warn("rate limit store unavailable",
					zap.String("client", key),
					zap.Error(err),
				)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
