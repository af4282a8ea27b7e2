package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/apperrors"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

// Session is what the transport needs from the session manager.
type Session interface {
	AccessToken() string
	RefreshToken() string
	SetPair(ctx context.Context, access string, refresh string) error
	Logout(ctx context.Context) error
}

type Config struct {
	// BaseURL of the platform API. Required. Trailing slashes are stripped.
	BaseURL string

	// HTTPClient to issue requests with. Defaults to a plain http.Client;
	// no extra timeouts are imposed at this layer.
	HTTPClient *http.Client

	// OnSessionExpired runs after the session has been cleared because a 401
	// could not be recovered. The UI layer uses it to return to the login
	// entry point; it must fire once per expiry.
	OnSessionExpired func()

	Logger logger.Logger
}

// Client is the session-managed transport every resource client goes through.
//
// Do attaches the current access token, and on a 401 performs exactly one
// refresh-and-retry cycle. Concurrent 401s on the same refresh token share a
// single in-flight refresh call.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
	logger  logger.Logger

	refreshGroup     singleflight.Group
	onSessionExpired func()
}

func NewClient(cfg Config, session Session) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL must not be empty")
	}
	if session == nil {
		return nil, errors.New("session must not be nil")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		http:             httpClient,
		session:          session,
		logger:           log,
		onSessionExpired: cfg.OnSessionExpired,
	}, nil
}

// Do issues one request through the auth cycle and returns the raw response
// body. Error statuses come back as *Error; transport failures with no
// response are returned as-is and never retried.
func (c *Client) Do(ctx context.Context, method string, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, query, payload, c.session.AccessToken())
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.retryUnauthorized(ctx, method, path, query, payload, resp)
	}
	return readResponse(resp)
}

// GetJSON fetches path, unwraps the envelope and decodes the payload into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodePayload(body, out)
}

// PostJSON sends 'in' as the JSON body; when out is non-nil the unwrapped
// payload is decoded into it.
func (c *Client) PostJSON(ctx context.Context, path string, in any, out any) error {
	body, err := c.Do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(body, out)
}

// PutJSON sends 'in' as the JSON body of a PUT request.
func (c *Client) PutJSON(ctx context.Context, path string, in any, out any) error {
	body, err := c.Do(ctx, http.MethodPut, path, nil, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(body, out)
}

// DeleteJSON issues a DELETE; the response body is ignored.
func (c *Client) DeleteJSON(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// retryUnauthorized runs the single refresh-and-retry cycle for a 401
// response. Whatever the retried request returns is final: a second 401
// surfaces to the caller, never another refresh.
func (c *Client) retryUnauthorized(ctx context.Context, method string, path string, query url.Values, payload []byte, resp *http.Response) ([]byte, error) {
	_, originalErr := readResponse(resp)

	refresh := c.session.RefreshToken()
	if refresh == "" {
		c.logger.Debug("Unauthorized with no refresh token, clearing session", "path", path)
		c.expireSession(ctx)
		return nil, originalErr
	}

	pair, err := c.refreshPair(ctx, refresh)
	if err != nil {
		c.logger.Warn("Session refresh failed", "error", err)
		c.expireSession(ctx)
		// The refresh failure surfaces, not the original 401.
		return nil, err
	}

	c.logger.Debug("Session refreshed, retrying request", "method", method, "path", path)
	retried, err := c.send(ctx, method, path, query, payload, pair.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("send retried request: %w", err)
	}
	return readResponse(retried)
}

// refreshPair deduplicates concurrent refresh attempts: every request that
// fails on the same refresh token awaits the same upstream call.
func (c *Client) refreshPair(ctx context.Context, refresh string) (models.TokenPair, error) {
	v, err, _ := c.refreshGroup.Do(refresh, func() (any, error) {
		return c.doRefresh(ctx, refresh)
	})
	if err != nil {
		return models.TokenPair{}, err
	}
	return v.(models.TokenPair), nil
}

// doRefresh exchanges the refresh token for a new pair. It goes straight to
// the HTTP client, bypassing Do: a 401 from the refresh endpoint itself must
// not recurse into another refresh.
func (c *Client) doRefresh(ctx context.Context, refresh string) (models.TokenPair, error) {
	var pair models.TokenPair

	payload, err := json.Marshal(map[string]string{"refreshToken": refresh})
	if err != nil {
		return pair, fmt.Errorf("%w: encode request: %v", apperrors.ErrRefreshFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return pair, fmt.Errorf("%w: create request: %v", apperrors.ErrRefreshFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return pair, fmt.Errorf("%w: %v", apperrors.ErrRefreshFailed, err)
	}

	body, err := readResponse(resp)
	if err != nil {
		return pair, fmt.Errorf("%w: %v", apperrors.ErrRefreshFailed, err)
	}

	data, err := Unwrap(body)
	if err != nil {
		return pair, fmt.Errorf("%w: %v", apperrors.ErrRefreshFailed, err)
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return pair, fmt.Errorf("%w: decode response: %v", apperrors.ErrRefreshFailed, err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return pair, fmt.Errorf("%w: incomplete token pair in response", apperrors.ErrRefreshFailed)
	}

	if err := c.session.SetPair(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return pair, fmt.Errorf("%w: persist tokens: %v", apperrors.ErrRefreshFailed, err)
	}

	return pair, nil
}

// expireSession clears persisted session state and fires the expiry hook.
// The hook only fires when there were credentials to clear, so repeated 401s
// on a dead session do not loop the caller back to login more than once.
func (c *Client) expireSession(ctx context.Context) {
	had := c.session.AccessToken() != "" || c.session.RefreshToken() != ""

	if err := c.session.Logout(ctx); err != nil {
		c.logger.Warn("Failed to clear session state", "error", err)
	}
	if had && c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// send builds and issues one request with the given bearer token attached.
func (c *Client) send(ctx context.Context, method string, path string, query url.Values, payload []byte, token string) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.http.Do(req)
}

// readResponse drains and closes the body. Statuses >= 400 become a *Error
// with the envelope message when the server sent one.
func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := ""
		if payload, perr := ParseBody(body); perr == nil && payload.Envelope != nil {
			message = payload.Envelope.Message
		}
		return nil, newStatusError(resp.StatusCode, message)
	}

	return body, nil
}

// decodePayload unwraps a response body and decodes the payload into out.
func decodePayload(body []byte, out any) error {
	payload, err := Unwrap(body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
