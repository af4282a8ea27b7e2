package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/apperrors"
)

var validate = validator.New()

// PageRequest is the input contract of every paginated fetch.
//
// Page and Size are always serialized, and Search is always sent even when
// empty: some endpoints distinguish an absent search parameter from an empty
// one. Sort and extra filters are omitted entirely when unset, never sent as
// null.
type PageRequest struct {
	// Page is the zero-based page index.
	Page int `validate:"gte=0"`
	// Size is the page size, must be positive.
	Size int `validate:"gt=0"`
	// Search is the free-text filter, may be empty.
	Search string
	// SortField and SortDir are optional; SortDir defaults to asc when a
	// sort field is set.
	SortField string
	SortDir   string `validate:"omitempty,oneof=asc desc"`
	// Filters holds endpoint-specific query parameters.
	Filters map[string]string
}

func (r PageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidPageRequest, err)
	}
	return nil
}

// Values encodes the request as URL query parameters.
func (r PageRequest) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(r.Page))
	values.Set("size", strconv.Itoa(r.Size))
	values.Set("search", r.Search)

	if r.SortField != "" {
		dir := r.SortDir
		if dir == "" {
			dir = "asc"
		}
		values.Set("sortBy", r.SortField)
		values.Set("sortDir", dir)
	}

	for key, value := range r.Filters {
		values.Set(key, value)
	}

	return values
}

// PageResult is the normalized output of a paginated fetch. Server order of
// Items is preserved.
type PageResult[T any] struct {
	Items         []T
	TotalPages    int
	TotalElements int
	// Page echoes the request's page index.
	Page int
}

// Wire shapes for paginated payloads. Spring-style endpoints nest the totals
// in a page descriptor; older ones put them at the top level next to content.
type pageBody[T any] struct {
	Content       []T             `json:"content"`
	Page          *pageDescriptor `json:"page"`
	TotalPages    int             `json:"totalPages"`
	TotalElements int             `json:"totalElements"`
}

type pageDescriptor struct {
	Number        int `json:"number"`
	Size          int `json:"size"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}

// NormalizePage turns an unwrapped payload into a PageResult. The payload may
// be a bare array (no pagination metadata) or an object with a content
// sequence plus a page descriptor; absent numeric fields default to 0.
func NormalizePage[T any](payload json.RawMessage, req PageRequest) (PageResult[T], error) {
	result := PageResult[T]{Page: req.Page}
	trimmed := bytes.TrimSpace(payload)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &result.Items); err != nil {
			return result, fmt.Errorf("decode page items: %w", err)
		}
		if result.Items == nil {
			result.Items = []T{}
		}
		return result, nil
	}

	var body pageBody[T]
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return result, fmt.Errorf("decode page payload: %w", err)
	}

	result.Items = body.Content
	if result.Items == nil {
		result.Items = []T{}
	}

	if body.Page != nil {
		result.TotalPages = body.Page.TotalPages
		result.TotalElements = body.Page.TotalElements
	} else {
		result.TotalPages = body.TotalPages
		result.TotalElements = body.TotalElements
	}

	return result, nil
}

// FetchPage runs one paginated fetch: validate the request, issue it through
// the session-managed transport, unwrap the envelope, normalize. This is the
// single implementation behind every list-backed resource client.
func FetchPage[T any](ctx context.Context, c *Client, path string, req PageRequest) (PageResult[T], error) {
	var zero PageResult[T]

	if err := req.Validate(); err != nil {
		return zero, err
	}

	body, err := c.Do(ctx, http.MethodGet, path, req.Values(), nil)
	if err != nil {
		return zero, err
	}

	payload, err := Unwrap(body)
	if err != nil {
		return zero, err
	}

	return NormalizePage[T](payload, req)
}
