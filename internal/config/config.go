package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/jaminalder/elite-tic-tac-toe/internal/logger"
)

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrEmptyValue          = errors.New("value must not be empty")
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	HTTP     HTTP     `yaml:"http"`
	Session  Session  `yaml:"session"`
	Terminal Terminal `yaml:"terminal"`
}

type HTTP struct {
	Addr              string        `yaml:"addr" env:"TTT_HTTP_ADDR" env-default:":8080"`
	ReadHeaderTimeout time.Duration `yaml:"read-header-timeout" env:"TTT_HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown-timeout" env:"TTT_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Session controls the lifetime of browser games.
type Session struct {
	CookieName    string        `yaml:"cookie-name" env:"TTT_SESSION_COOKIE" env-default:"ttt_session"`
	IdleTTL       time.Duration `yaml:"idle-ttl" env:"TTT_SESSION_IDLE_TTL" env-default:"2h"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"TTT_SESSION_SWEEP_INTERVAL" env-default:"5m"`
}

// Terminal - Plain disables colours and styling in the terminal renderer.
type Terminal struct {
	Plain bool `yaml:"plain" env:"TTT_TERMINAL_PLAIN"`
}

// Load reads the YAML file at path, if any, and then the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr: %w", ErrEmptyValue)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie-name: %w", ErrEmptyValue)
	}
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"http.read-header-timeout", c.HTTP.ReadHeaderTimeout},
		{"http.shutdown-timeout", c.HTTP.ShutdownTimeout},
		{"session.idle-ttl", c.Session.IdleTTL},
		{"session.sweep-interval", c.Session.SweepInterval},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s: %w", d.name, ErrNonPositiveDuration)
		}
	}
	return nil
}
