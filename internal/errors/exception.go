package errors

import (
	"errors"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Exception struct {
	Message    string
	StatusCode int
	Fields     []FieldError
	Err        error
}

func (e *Exception) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, fields ...FieldError) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

// NewStoreError wraps a persistence failure. The cause is kept for logs and
// development responses only.
func NewStoreError(err error) *Exception {
	return &Exception{
		Message:    "store operation failed",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
