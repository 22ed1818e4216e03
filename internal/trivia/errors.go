package trivia

import (
	"fmt"
	"net/http"
)

// StatusError tags a failure with the HTTP status it must surface as. The
// service decides the taxonomy; handlers translate it exactly once at the
// response boundary.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", StatusMessage(e.Status), e.Err)
	}
	return StatusMessage(e.Status)
}

func (e *StatusError) Unwrap() error { return e.Err }

// StatusMessage returns the stable client-facing message for each taxonomy
// status. Clients assert on these strings, so they never vary per request.
func StatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	default:
		return "internal server error"
	}
}

func badRequest(err error) *StatusError {
	return &StatusError{Status: http.StatusBadRequest, Err: err}
}

func notFound(err error) *StatusError {
	return &StatusError{Status: http.StatusNotFound, Err: err}
}

func unprocessable(err error) *StatusError {
	return &StatusError{Status: http.StatusUnprocessableEntity, Err: err}
}
