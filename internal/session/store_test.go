package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("set get delete", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Set(t.Context(), KeyAccessToken, "tok"))

		value, err := store.Get(t.Context(), KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "tok", value)

		require.NoError(t, store.Delete(t.Context(), KeyAccessToken))

		value, err = store.Get(t.Context(), KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "", value, "deleted key should read as empty")
	})

	t.Run("missing key reads as empty", func(t *testing.T) {
		store := NewMemoryStore()

		value, err := store.Get(t.Context(), "nothing")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("watch reports mutated keys", func(t *testing.T) {
		store := NewMemoryStore()

		var changed []string
		unsubscribe := store.Watch(func(key string) { changed = append(changed, key) })

		require.NoError(t, store.Set(t.Context(), KeyAccessToken, "tok"))
		require.NoError(t, store.Delete(t.Context(), KeyAccessToken))

		assert.Equal(t, []string{KeyAccessToken, KeyAccessToken}, changed)

		unsubscribe()
		require.NoError(t, store.Set(t.Context(), KeyAccessToken, "other"))
		assert.Len(t, changed, 2, "unsubscribed watcher must not be called")
	})

	t.Run("delete of missing key does not notify", func(t *testing.T) {
		store := NewMemoryStore()

		calls := 0
		store.Watch(func(string) { calls++ })

		require.NoError(t, store.Delete(t.Context(), "nothing"))
		assert.Equal(t, 0, calls)
	})
}

func Test_FileStore(t *testing.T) {
	t.Parallel()

	t.Run("state survives between store instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state", "session.json")

		first := NewFileStore(path)
		require.NoError(t, first.Set(t.Context(), KeyAccessToken, "tok"))
		require.NoError(t, first.Set(t.Context(), KeyRefreshToken, "refresh"))

		second := NewFileStore(path)
		value, err := second.Get(t.Context(), KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "tok", value)

		value, err = second.Get(t.Context(), KeyRefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "refresh", value)
	})

	t.Run("missing file is an empty store", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

		value, err := store.Get(t.Context(), KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("delete removes keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := NewFileStore(path)

		require.NoError(t, store.Set(t.Context(), KeyAccessToken, "tok"))
		require.NoError(t, store.Delete(t.Context(), KeyAccessToken))

		value, err := store.Get(t.Context(), KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("watch reports local mutations", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

		var changed []string
		store.Watch(func(key string) { changed = append(changed, key) })

		require.NoError(t, store.Set(t.Context(), KeyAccessToken, "tok"))
		assert.Equal(t, []string{KeyAccessToken}, changed)
	})
}
