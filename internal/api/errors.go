package api

import (
	"fmt"
	"net/http"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/apperrors"
)

// Error is a transport-layer failure carrying the HTTP status and the server
// message when one was present in the response envelope.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newStatusError maps well-known statuses onto sentinel errors so callers can
// match with errors.Is without inspecting status codes.
func newStatusError(status int, message string) *Error {
	var err error
	switch status {
	case http.StatusUnauthorized:
		err = apperrors.ErrUnauthorized
	case http.StatusNotFound:
		err = apperrors.ErrNotFound
	}

	return &Error{Status: status, Message: message, Err: err}
}
