package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

var loadDotEnv = godotenv.Load

func parseEnv(cfg *Config) {
	_ = loadDotEnv()

	if v := os.Getenv("STORYKU_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("STORYKU_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
