package apperrors

import (
	"errors"
)

var (
	// Envelope unwrapping
	ErrEmptyResponse = errors.New("empty response")

	// Session lifecycle
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRefreshFailed = errors.New("token refresh failed")

	// Paginated fetch
	ErrInvalidPageRequest = errors.New("invalid page request")

	// Resources
	ErrNotFound         = errors.New("resource not found")
	ErrSlotNotAvailable = errors.New("appointment slot not available")
)
