package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/notify"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/resources"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/session"
)

type App struct {
	logger   logger.Logger
	manager  *session.Manager
	console  *resources.Console
	listener *notify.Listener
	out      io.Writer
}

func NewApp(ctx context.Context, c *Config) (*App, error) {
	log := logger.NewLogger(c.LogLevel)
	if c.LogFormat == "json" {
		log = logger.NewJSONLogger(c.LogLevel)
	}

	store, err := newStore(c, log)
	if err != nil {
		return nil, err
	}

	manager, err := session.NewManager(ctx, store, log)
	if err != nil {
		return nil, fmt.Errorf("error while initializing session manager. Err: %w", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: c.APIURL,
		Logger:  log,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'smartquitctl login <email>' to sign in again.")
		},
	}, manager)
	if err != nil {
		return nil, fmt.Errorf("error while initializing api client. Err: %w", err)
	}

	return &App{
		logger:   log,
		manager:  manager,
		console:  resources.NewConsole(client, manager),
		listener: notify.NewListener(c.WSURL, manager.AccessToken, log),
		out:      os.Stdout,
	}, nil
}

// newStore picks the session backend: Redis when configured, otherwise a
// state file in the user's home directory.
func newStore(c *Config, log logger.Logger) (session.Store, error) {
	if c.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		return session.NewRedisStore(client, log), nil
	}

	path := c.StateFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error while resolving home dir. Err: %w", err)
		}
		path = filepath.Join(home, ".smartquitctl", "session.json")
	}
	return session.NewFileStore(path), nil
}

func (a *App) Close() {
	a.manager.Close()
}

// Run dispatches one console command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: smartquitctl <login|logout|whoami|list|watch> [args]")
	}

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami()
	case "list":
		return a.cmdList(ctx, args[1:])
	case "watch":
		return a.cmdWatch(ctx)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
