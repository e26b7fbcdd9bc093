package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "ttt_session", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.SweepInterval)
	assert.False(t, cfg.Terminal.Plain)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TTT_LOG_LEVEL", "debug")
	t.Setenv("TTT_HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("TTT_SESSION_IDLE_TTL", "30m")
	t.Setenv("TTT_TERMINAL_PLAIN", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9999", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.True(t, cfg.Terminal.Plain)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("log-level: warn\nhttp:\n  addr: \":7070\"\nsession:\n  cookie-name: game\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "game", cfg.Session.CookieName)
	// untouched fields keep their defaults
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("TTT_LOG_LEVEL", "chatty")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("negative ttl", func(t *testing.T) {
		t.Setenv("TTT_SESSION_IDLE_TTL", "-1m")
		_, err := Load("")
		require.ErrorIs(t, err, ErrNonPositiveDuration)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})
}

func TestMustLoadPanics(t *testing.T) {
	t.Setenv("TTT_HTTP_SHUTDOWN_TIMEOUT", "0s")
	assert.Panics(t, func() { MustLoad("") })
}
