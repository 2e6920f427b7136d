package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv is a seam for godotenv.Load.
var loadDotEnv = godotenv.Load

// parseEnv overlays Config with environment variables, after loading a .env
// file from the working directory when one exists. Variables already set in
// the process environment win over .env entries.
func parseEnv(cfg *Config) {
	_ = loadDotEnv()

	setString(&cfg.EndpointAddrHTTP, "STORYKU_HTTP_ADDR")
	setString(&cfg.DatabaseDriver, "DATABASE_DRIVER")
	setString(&cfg.DatabaseDSN, "DATABASE_DSN")
	setString(&cfg.UploadBackend, "UPLOAD_BACKEND")
	setString(&cfg.UploadDir, "UPLOAD_DIR")
	setString(&cfg.S3RootUser, "S3_ROOT_USER")
	setString(&cfg.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&cfg.S3Bucket, "S3_BUCKET")
	setString(&cfg.S3Region, "S3_REGION")
	setString(&cfg.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
