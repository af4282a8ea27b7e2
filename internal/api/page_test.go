package api

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/apperrors"
)

func Test_PageRequestValues(t *testing.T) {
	t.Parallel()

	t.Run("page size and search are always sent", func(t *testing.T) {
		values := PageRequest{Page: 0, Size: 10}.Values()

		assert.Equal(t, "0", values.Get("page"))
		assert.Equal(t, "10", values.Get("size"))

		// An empty search term is sent explicitly, not omitted: some
		// endpoints treat absent and empty differently.
		_, ok := values["search"]
		require.True(t, ok, "search key must be present")
		assert.Equal(t, "", values.Get("search"))
	})

	t.Run("sort omitted when unset", func(t *testing.T) {
		values := PageRequest{Page: 0, Size: 10}.Values()

		_, ok := values["sortBy"]
		assert.False(t, ok)
		_, ok = values["sortDir"]
		assert.False(t, ok)
	})

	t.Run("sort direction defaults to asc", func(t *testing.T) {
		values := PageRequest{Page: 0, Size: 10, SortField: "createdAt"}.Values()

		assert.Equal(t, "createdAt", values.Get("sortBy"))
		assert.Equal(t, "asc", values.Get("sortDir"))
	})

	t.Run("filters are included", func(t *testing.T) {
		values := PageRequest{Page: 2, Size: 5, Filters: map[string]string{"status": "PAID"}}.Values()

		assert.Equal(t, "PAID", values.Get("status"))
		assert.Equal(t, "2", values.Get("page"))
	})
}

func Test_PageRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     PageRequest
		wantErr bool
	}{
		{name: "valid", req: PageRequest{Page: 0, Size: 10}, wantErr: false},
		{name: "valid with sort", req: PageRequest{Page: 3, Size: 50, SortDir: "desc", SortField: "name"}, wantErr: false},
		{name: "negative page", req: PageRequest{Page: -1, Size: 10}, wantErr: true},
		{name: "zero size", req: PageRequest{Page: 0, Size: 0}, wantErr: true},
		{name: "bad sort direction", req: PageRequest{Page: 0, Size: 10, SortDir: "sideways"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrInvalidPageRequest)
				return
			}
			require.NoError(t, err)
		})
	}
}

type testItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func Test_NormalizePage(t *testing.T) {
	t.Parallel()

	req := PageRequest{Page: 0, Size: 10}

	t.Run("content with nested page descriptor", func(t *testing.T) {
		items := make([]string, 0, 10)
		for i := range 10 {
			items = append(items, fmt.Sprintf(`{"id":%d,"name":"item-%d"}`, i, i))
		}
		payload := fmt.Sprintf(`{"content":[%s],"page":{"number":0,"size":10,"totalPages":5,"totalElements":47}}`,
			jsonJoin(items))

		result, err := NormalizePage[testItem](json.RawMessage(payload), req)

		require.NoError(t, err)
		assert.Len(t, result.Items, 10)
		assert.Equal(t, 5, result.TotalPages)
		assert.Equal(t, 47, result.TotalElements)
		assert.Equal(t, 0, result.Page)
		assert.Equal(t, testItem{ID: 0, Name: "item-0"}, result.Items[0], "server order preserved")
	})

	t.Run("top level totals", func(t *testing.T) {
		payload := `{"content":[{"id":1,"name":"a"}],"totalPages":3,"totalElements":21}`

		result, err := NormalizePage[testItem](json.RawMessage(payload), req)

		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, 21, result.TotalElements)
	})

	t.Run("zero elements means empty items and zero pages", func(t *testing.T) {
		payload := `{"content":[],"page":{"totalPages":0,"totalElements":0}}`

		result, err := NormalizePage[testItem](json.RawMessage(payload), req)

		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.TotalPages)
		assert.Equal(t, 0, result.TotalElements)
	})

	t.Run("bare array has no pagination metadata", func(t *testing.T) {
		payload := `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`

		result, err := NormalizePage[testItem](json.RawMessage(payload), req)

		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, 0, result.TotalPages, "absent numeric fields default to 0")
		assert.Equal(t, 0, result.TotalElements)
	})

	t.Run("object without content", func(t *testing.T) {
		result, err := NormalizePage[testItem](json.RawMessage(`{"something":"else"}`), req)

		require.NoError(t, err)
		assert.Empty(t, result.Items)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := NormalizePage[testItem](json.RawMessage(`{"content":"notanarray"}`), req)

		require.Error(t, err)
	})
}

func jsonJoin(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ","
		}
		out += item
	}
	return out
}
