package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	assert.Equal(t, "ws://localhost:8080/ws/notifications", cfg.WSURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.StateFile)
	assert.Empty(t, cfg.RedisAddr)
}

func Test_ConfigLoadEnv(t *testing.T) {
	t.Parallel()

	t.Run("set values are applied", func(t *testing.T) {
		env := map[string]string{
			"SMARTQUIT_API_URL":    "https://admin.smartquit.test/api",
			"SMARTQUIT_WS_URL":     "wss://admin.smartquit.test/ws",
			"SMARTQUIT_STATE_FILE": "/tmp/session.json",
			"SMARTQUIT_REDIS_ADDR": "localhost:6379",
			"LOG_LEVEL":            "debug",
			"LOG_FORMAT":           "json",
		}

		cfg := NewConfig()
		cfg.LoadEnv(func(key string) string { return env[key] })

		assert.Equal(t, "https://admin.smartquit.test/api", cfg.APIURL)
		assert.Equal(t, "wss://admin.smartquit.test/ws", cfg.WSURL)
		assert.Equal(t, "/tmp/session.json", cfg.StateFile)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("empty values keep defaults", func(t *testing.T) {
		cfg := NewConfig()
		cfg.LoadEnv(func(string) string { return "" })

		assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func Test_ConfigParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags override config", func(t *testing.T) {
		cfg := NewConfig()

		args, err := cfg.ParseFlags([]string{
			"--api-url", "https://staging.smartquit.test/api",
			"-r", "redis:6379",
			"-l", "warn",
			"list", "members", "--page", "2",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://staging.smartquit.test/api", cfg.APIURL)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, []string{"list", "members", "--page", "2"}, args)
	})

	t.Run("no args no changes", func(t *testing.T) {
		cfg := NewConfig()

		args, err := cfg.ParseFlags(nil)

		require.NoError(t, err)
		assert.Empty(t, args)
		assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		cfg := NewConfig()

		_, err := cfg.ParseFlags([]string{"--no-such-flag"})

		require.Error(t, err)
	})
}
