package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/logger"
)

const internalErrorMessage = "Internal server error"

// Envelope wraps every response body.
type Envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message,omitempty"`
	Data       any                    `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Errors     []apperrors.FieldError `json:"errors,omitempty"`
	Pagination *dto.Pagination        `json:"pagination,omitempty"`
	Filters    *dto.TaskQuery         `json:"filters,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// NewErrorHandler renders every error returned by a handler or middleware as
// an envelope. Details of server errors are only exposed in development.
func NewErrorHandler(log *zap.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorEnvelope(err, development)
		if status >= http.StatusInternalServerError {
			logger.WithRequestID(c.Request().Context(), log).Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}

func errorEnvelope(err error, development bool) (int, Envelope) {
	var exc *apperrors.Exception
	if errors.As(err, &exc) {
		if exc.StatusCode >= http.StatusInternalServerError {
			return exc.StatusCode, serverError(err, development)
		}
		return exc.StatusCode, Envelope{Message: exc.Message, Errors: exc.Fields}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, serverError(err, development)
		}
		message := fmt.Sprint(he.Message)
		switch he.Code {
		case http.StatusNotFound:
			message = "Route not found"
		case http.StatusMethodNotAllowed:
			message = "Method not allowed"
		}
		return he.Code, Envelope{Message: message}
	}

	return http.StatusInternalServerError, serverError(err, development)
}

func serverError(err error, development bool) Envelope {
	body := Envelope{Message: internalErrorMessage, Error: internalErrorMessage}
	if development {
		body.Error = err.Error()
	}
	return body
}
