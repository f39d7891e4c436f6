package web

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error is used to pass an error during the request through the application
// with web specific context.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. It is used
// when the failure is expected and the caller should see the message.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

// Cause lets errors.Cause reach the wrapped error.
func (e *Error) Cause() error {
	return e.Err
}

// ErrorResponse is the form used for API responses from failures.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status bool   `json:"status"`
}

// statusOf reports the HTTP status for err, 500 for anything not created by
// NewRequestError.
func statusOf(err error) (int, string) {
	var webErr *Error
	if errors.As(err, &webErr) {
		return webErr.Status, webErr.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
