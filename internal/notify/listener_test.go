package notify_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/notify"
)

func wsURLFor(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func Test_ListenerListen(t *testing.T) {
	t.Parallel()

	t.Run("streams frames with the bearer token", func(t *testing.T) {
		gotAuth := make(chan string, 1)
		srv := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
			gotAuth <- conn.Request().Header.Get("Authorization")

			for _, n := range []notify.Notification{
				{Type: "MILESTONE", Title: "30 days smoke free", Body: "Ada hit a milestone"},
				{Type: "APPOINTMENT", Title: "Booking confirmed"},
			} {
				require.NoError(t, websocket.JSON.Send(conn, n))
			}
		}))
		t.Cleanup(srv.Close)

		listener := notify.NewListener(wsURLFor(srv), func() string { return "tok-1" }, logger.NewNoOpLogger())

		ch, err := listener.Listen(t.Context())
		require.NoError(t, err)

		assert.Equal(t, "Bearer tok-1", <-gotAuth)

		first := <-ch
		assert.Equal(t, "MILESTONE", first.Type)
		assert.Equal(t, "30 days smoke free", first.Title)

		second := <-ch
		assert.Equal(t, "APPOINTMENT", second.Type)

		// Handler returned, the server closes the connection.
		_, open := <-ch
		assert.False(t, open, "channel closes when the connection drops")
	})

	t.Run("cancel closes the channel", func(t *testing.T) {
		srv := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
			// Hold the connection open until the client goes away.
			var discard notify.Notification
			_ = websocket.JSON.Receive(conn, &discard)
		}))
		t.Cleanup(srv.Close)

		listener := notify.NewListener(wsURLFor(srv), func() string { return "" }, nil)

		ctx, cancel := context.WithCancel(t.Context())
		ch, err := listener.Listen(ctx)
		require.NoError(t, err)

		cancel()

		select {
		case _, open := <-ch:
			assert.False(t, open)
		case <-time.After(2 * time.Second):
			t.Fatal("channel did not close after cancel")
		}
	})

	t.Run("bad url fails fast", func(t *testing.T) {
		listener := notify.NewListener("::not-a-url", func() string { return "" }, nil)

		_, err := listener.Listen(t.Context())
		require.Error(t, err)
	})
}
