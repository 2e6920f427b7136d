package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/storyku")
	t.Setenv("UPLOAD_BACKEND", "s3")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://u:p@db:5432/storyku", cfg.DatabaseDSN)
	assert.Equal(t, "s3", cfg.UploadBackend)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":5000", cfg.EndpointAddrHTTP, "unset keys keep defaults")
}

func TestParseEnv_BadDurationIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := &Config{ShutdownTimeout: time.Second}
	parseEnv(cfg)

	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UPLOAD_DIR=covers\nLOG_LEVEL=debug\n"), 0o600))

	loadDotEnv = func(...string) error { return godotenv.Overload(path) }

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "covers", cfg.UploadDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}
