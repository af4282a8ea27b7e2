package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
)

const (
	defaultAPIURL       = "http://localhost:8080/api"
	defaultWSURL        = "ws://localhost:8080/ws/notifications"
	defaultLoggingLevel = logger.LevelInfo
)

type Config struct {
	// Default logging level
	LogLevel string

	// Logging format, 'text' or 'json'
	LogFormat string

	// Base URL of the platform REST API
	APIURL string

	// URL of the live notification socket
	WSURL string

	// Path of the local session state file
	// If empty, '~/.smartquitctl/session.json' is used
	StateFile string

	// Redis address for a shared session store
	// When set, the file store is not used
	RedisAddr string
}

func NewConfig() *Config {
	return &Config{
		LogLevel:  defaultLoggingLevel,
		LogFormat: "text",
		APIURL:    defaultAPIURL,
		WSURL:     defaultWSURL,
	}
}

// Load variable from '.env' file (should be located at working directory)
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		c.LoadEnv(func(key string) string {
			return envMap[key]
		})
		return nil
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

func (c *Config) LoadEnv(getenv func(string) string) {
	// Set option to value if it not empty
	setString := func(o *string) func(value string) {
		return func(value string) {
			if value != "" {
				*o = value
			}
		}
	}

	envMap := map[string]func(string){
		"SMARTQUIT_API_URL":    setString(&c.APIURL),
		"SMARTQUIT_WS_URL":     setString(&c.WSURL),
		"SMARTQUIT_STATE_FILE": setString(&c.StateFile),
		"SMARTQUIT_REDIS_ADDR": setString(&c.RedisAddr),
		"LOG_LEVEL":            setString(&c.LogLevel),
		"LOG_FORMAT":           setString(&c.LogFormat),
	}

	for key, parseFn := range envMap {
		parseFn(getenv(key))
	}
}

// ParseFlags parses global flags and returns the remaining positional
// arguments (the command and its own arguments).
func (c *Config) ParseFlags(args []string) ([]string, error) {
	fs := pflag.NewFlagSet("smartquitctl", pflag.ContinueOnError)
	// Flags after the first positional argument belong to the command.
	fs.SetInterspersed(false)

	fs.StringVarP(&c.APIURL, "api-url", "u", c.APIURL, "Platform API base URL")
	fs.StringVarP(&c.WSURL, "ws-url", "w", c.WSURL, "Notification socket URL")
	fs.StringVarP(&c.StateFile, "state-file", "f", c.StateFile, "Session state file path")
	fs.StringVarP(&c.RedisAddr, "redis", "r", c.RedisAddr, "Redis address for a shared session store")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Logging format (text, json)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}
