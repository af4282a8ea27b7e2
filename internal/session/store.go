package session

import (
	"context"
)

// Logical storage keys.
//
// The browser console historically persisted the access token under several
// names; all of them are still recognized on read. AccessTokenKeys is the
// lookup priority order, first non-empty value wins. Writes always go to the
// primary key.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyAccount      = "account"
)

// AccessTokenKeys lists every key that may hold the access token, in lookup
// priority order.
var AccessTokenKeys = []string{KeyAccessToken, "access_token", "token", "jwt"}

// Store is the persisted key-value storage behind the session manager.
//
// Only the Manager may touch a Store; every other component reads session
// state through the Manager's accessors.
type Store interface {
	// Get returns the value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set persists value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Watch registers fn to be called with the key name whenever a value
	// changes, including changes made by other processes where the backend
	// supports it. The returned func unregisters the callback.
	Watch(fn func(key string)) (unsubscribe func())
}
