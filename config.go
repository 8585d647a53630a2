package tgmux

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvToken       = "TELEGRAM_TOKEN"
	EnvDebug       = "TELEGRAM_DEBUG"
	EnvLogLevel    = "LOG_LEVEL"
	EnvPollTimeout = "POLL_TIMEOUT"
	EnvQueueIdle   = "QUEUE_IDLE"
)

var ErrMissingToken = errors.New(EnvToken + " environment variable is required")

// ConfigError is returned when the environment can't produce a usable Config.
type ConfigError struct {
	Var string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Var, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type Config struct {
	Token       string
	Debug       bool
	LogLevel    zerolog.Level
	PollTimeout int
	QueueIdle   time.Duration
}

// LoadConfig reads an optional .env file from the working directory and then
// the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, &ConfigError{Var: ".env", Err: err}
	}

	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config using lookup for every variable.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		LogLevel:    zerolog.InfoLevel,
		PollTimeout: DefaultPollTimeout,
		QueueIdle:   DefaultQueueIdle,
	}

	token, _ := lookup(EnvToken)
	if token == "" {
		return Config{}, &ConfigError{Var: EnvToken, Err: ErrMissingToken}
	}
	cfg.Token = token

	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, &ConfigError{Var: EnvDebug, Err: err}
		}
		cfg.Debug = debug
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, &ConfigError{Var: EnvLogLevel, Err: err}
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvPollTimeout); ok && v != "" {
		timeout, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, &ConfigError{Var: EnvPollTimeout, Err: err}
		}
		if timeout <= 0 {
			return Config{}, &ConfigError{Var: EnvPollTimeout, Err: fmt.Errorf("must be positive, got %d", timeout)}
		}
		cfg.PollTimeout = timeout
	}

	if v, ok := lookup(EnvQueueIdle); ok && v != "" {
		idle, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, &ConfigError{Var: EnvQueueIdle, Err: err}
		}
		if idle <= 0 {
			return Config{}, &ConfigError{Var: EnvQueueIdle, Err: fmt.Errorf("must be positive, got %s", idle)}
		}
		cfg.QueueIdle = idle
	}

	return cfg, nil
}
