package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

// Manager owns the credential lifecycle of the running console.
//
// It is the only component allowed to touch the underlying Store. In-memory
// state (tokens, decoded claims, cached account) is a cache over the store,
// re-derived on every mutation and on every external store change reported
// through Watch. Claims come from the access token alone; there is no second
// source of truth.
type Manager struct {
	store  Store
	logger logger.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	claims       *Claims
	account      *models.Account

	unsubscribe func()
}

// NewManager loads current session state from the store and subscribes to
// store changes. Close must be called to drop the subscription.
func NewManager(ctx context.Context, store Store, log logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	m := &Manager{
		store:  store,
		logger: log,
	}

	if err := m.reload(ctx); err != nil {
		return nil, fmt.Errorf("load session state: %w", err)
	}

	m.unsubscribe = store.Watch(m.onStoreChange)
	return m, nil
}

func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// AccessToken returns the cached access token. Never performs I/O.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}

// RefreshToken returns the cached refresh token. Never performs I/O.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshToken
}

// AccountID returns the account identifier: from the access token claims when
// present, otherwise from the cached account record.
func (m *Manager) AccountID() (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.claims != nil && m.claims.AccountID != 0 {
		return m.claims.AccountID, true
	}
	if m.account != nil {
		return m.account.ID, true
	}
	return 0, false
}

// Account returns the cached profile record, if any.
func (m *Manager) Account() (models.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.account == nil {
		return models.Account{}, false
	}
	return *m.account, true
}

// SetToken persists and activates an access token, re-deriving claims.
// An empty token clears the access token and claims but keeps the refresh
// token and account record.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	var err error
	if token == "" {
		err = m.store.Delete(ctx, AccessTokenKeys...)
	} else {
		err = m.store.Set(ctx, KeyAccessToken, token)
	}
	if err != nil {
		return fmt.Errorf("persist access token: %w", err)
	}

	return m.reload(ctx)
}

// SetPair replaces both tokens, as happens on login and on every successful
// refresh.
func (m *Manager) SetPair(ctx context.Context, access string, refresh string) error {
	if err := m.store.Set(ctx, KeyAccessToken, access); err != nil {
		return fmt.Errorf("persist access token: %w", err)
	}
	if err := m.store.Set(ctx, KeyRefreshToken, refresh); err != nil {
		return fmt.Errorf("persist refresh token: %w", err)
	}

	return m.reload(ctx)
}

// SetAccount caches the profile record used as an identity fallback.
func (m *Manager) SetAccount(ctx context.Context, account models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	if err := m.store.Set(ctx, KeyAccount, string(data)); err != nil {
		return fmt.Errorf("persist account: %w", err)
	}

	return m.reload(ctx)
}

// Logout clears every piece of persisted session state. It does not navigate
// anywhere: what happens after a logout is the caller's concern.
func (m *Manager) Logout(ctx context.Context) error {
	keys := append([]string{}, AccessTokenKeys...)
	keys = append(keys, KeyRefreshToken, KeyAccount)

	if err := m.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("clear session state: %w", err)
	}

	return m.reload(ctx)
}

// IsAuthenticated reports whether an access token exists, decodes, and is not
// expired.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.claims != nil && m.claims.ExpiresAfter(time.Now())
}

// IsAuthenticatedWithRole additionally requires an exact, case-sensitive
// scope match.
func (m *Manager) IsAuthenticatedWithRole(role string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.claims != nil && m.claims.ExpiresAfter(time.Now()) && m.claims.Scope == role
}

// onStoreChange re-derives in-memory state when a session key changes in the
// store, including changes made by another process.
func (m *Manager) onStoreChange(key string) {
	if !isSessionKey(key) {
		return
	}
	if err := m.reload(context.Background()); err != nil {
		m.logger.Warn("Failed to reload session state on store change", "key", key, "error", err)
	}
}

// reload reads the store and replaces the in-memory cache.
//
// The access token is looked up under every legacy alias in priority order.
// Decode failures are silent here: a malformed token or account record means
// "no claims", never an error.
func (m *Manager) reload(ctx context.Context) error {
	var access string
	for _, key := range AccessTokenKeys {
		value, err := m.store.Get(ctx, key)
		if err != nil {
			return err
		}
		if value != "" {
			access = value
			break
		}
	}

	refresh, err := m.store.Get(ctx, KeyRefreshToken)
	if err != nil {
		return err
	}

	rawAccount, err := m.store.Get(ctx, KeyAccount)
	if err != nil {
		return err
	}

	var account *models.Account
	if rawAccount != "" {
		account = &models.Account{}
		if err := json.Unmarshal([]byte(rawAccount), account); err != nil {
			m.logger.Debug("Failed to decode cached account record", "error", err)
			account = nil
		}
	}

	claims := DecodeClaims(access)
	if access != "" && claims == nil {
		m.logger.Debug("Failed to decode access token claims")
	}

	m.mu.Lock()
	m.accessToken = access
	m.refreshToken = refresh
	m.claims = claims
	m.account = account
	m.mu.Unlock()

	return nil
}

func isSessionKey(key string) bool {
	if key == KeyRefreshToken || key == KeyAccount {
		return true
	}
	for _, alias := range AccessTokenKeys {
		if key == alias {
			return true
		}
	}
	return false
}
