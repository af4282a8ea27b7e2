package notify

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/net/websocket"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
)

// Notification is one frame from the live feed. The platform sends more
// fields than these; everything beyond this minimal shape is ignored here.
type Notification struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Listener connects to the platform's notification socket with the current
// access token and turns incoming frames into a channel.
//
// There is no reconnect policy: when the channel closes the caller decides
// whether to call Listen again.
type Listener struct {
	wsURL  string
	token  func() string
	logger logger.Logger
}

// NewListener takes the socket URL and a token source, usually the session
// manager's AccessToken accessor.
func NewListener(wsURL string, token func() string, log logger.Logger) *Listener {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Listener{
		wsURL:  wsURL,
		token:  token,
		logger: log,
	}
}

// Listen dials the socket and streams notifications until the context is
// cancelled or the connection drops. The returned channel is closed in both
// cases.
func (l *Listener) Listen(ctx context.Context) (<-chan Notification, error) {
	origin, err := originFor(l.wsURL)
	if err != nil {
		return nil, err
	}

	cfg, err := websocket.NewConfig(l.wsURL, origin)
	if err != nil {
		return nil, fmt.Errorf("configure notification socket: %w", err)
	}
	if token := l.token(); token != "" {
		cfg.Header.Set("Authorization", "Bearer "+token)
	}

	conn, err := websocket.DialConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("dial notification socket: %w", err)
	}

	// Cancelling the context closes the connection, which unblocks Receive.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	ch := make(chan Notification)
	go func() {
		defer close(ch)
		for {
			var n Notification
			if err := websocket.JSON.Receive(conn, &n); err != nil {
				if ctx.Err() == nil {
					l.logger.Warn("Notification socket closed", "error", err)
				}
				return
			}

			select {
			case ch <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// originFor derives the http(s) origin the websocket handshake reports.
func originFor(wsURL string) (string, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return "", fmt.Errorf("parse socket url: %w", err)
	}

	switch u.Scheme {
	case "wss":
		u.Scheme = "https"
	default:
		u.Scheme = "http"
	}
	u.Path = "/"
	u.RawQuery = ""

	return u.String(), nil
}
