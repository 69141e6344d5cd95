package errors

import "net/http"

var (
	ErrTaskNotFound = &Exception{
		Message:    "task not found",
		StatusCode: http.StatusNotFound,
	}

	ErrInvalidTaskID = &Exception{
		Message:    "task id must be a positive integer",
		StatusCode: http.StatusBadRequest,
		Fields:     []FieldError{{Field: "id", Message: "must be a positive integer"}},
	}
)
