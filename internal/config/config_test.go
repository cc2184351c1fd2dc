package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CITYANIMALS_ENV", "production")
	t.Setenv("CITYANIMALS_SERVER__PORT", "9090")
	t.Setenv("CITYANIMALS_SERVER__WRITE_TIMEOUT", "30s")
	t.Setenv("CITYANIMALS_DATABASE__DSN", "postgres://u:p@localhost:5432/animals?sslmode=disable")
	t.Setenv("CITYANIMALS_DATABASE__MAX_OPEN_CONNS", "25")
	t.Setenv("CITYANIMALS_LOGGING__FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://u:p@localhost:5432/animals?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("CITYANIMALS_LOGGING__LEVEL", "chatty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
