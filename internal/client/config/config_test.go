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

func isolate(t *testing.T, args ...string) {
	t.Helper()
	t.Setenv("STORYKU_SERVER_URL", "")
	t.Setenv("STORYKU_REQUEST_TIMEOUT", "")
	origLoad := loadDotEnv
	loadDotEnv = func(...string) error { return nil }
	origArgs := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() {
		loadDotEnv = origLoad
		os.Args = origArgs
	})
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	isolate(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"http://json:1","request_timeout":"7s"}`), 0o600))

	isolate(t, "-c", path, "-a", "http://flag:2", "list")
	t.Setenv("STORYKU_SERVER_URL", "http://env:3")
	t.Setenv("STORYKU_REQUEST_TIMEOUT", "2s")

	cfg := LoadConfig()

	assert.Equal(t, "http://flag:2", cfg.ServerURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STORYKU_SERVER_URL=http://dotenv:5000\n"), 0o600))

	loadDotEnv = func(...string) error {
		return godotenv.Overload(envFile)
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://dotenv:5000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
