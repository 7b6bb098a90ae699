package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8050, cfg.Server.Port)
	require.False(t, cfg.Server.Debug)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Log.JSON)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("UBERDASH_SERVER_PORT", "9090")
	t.Setenv("UBERDASH_SERVER_DEBUG", "true")
	t.Setenv("UBERDASH_SERVER_SHUTDOWN_TIMEOUT", "1m30s")
	t.Setenv("UBERDASH_LOG_JSON", "true")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.True(t, cfg.Server.Debug)
	require.Equal(t, 90*time.Second, cfg.Server.ShutdownTimeout)
	require.True(t, cfg.Log.JSON)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uberdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 0.0.0.0
  port: 8080
  write_timeout: 1d
log:
  level: debug
`), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 24*time.Hour, cfg.Server.WriteTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	v := New()
	v.Set("server.read_timeout", "soon")
	_, err = Load(v, "")
	require.ErrorContains(t, err, "server.read_timeout")

	v = New()
	v.Set("server.port", 70000)
	_, err = Load(v, "")
	require.ErrorContains(t, err, "invalid server port")
}
