package errors

import "net/http"

var ErrInvalidLimit = &Exception{
	Message:    "limit must be an integer between 1 and 100",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPage = &Exception{
	Message:    "page must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
