// Package config handles configuration for the server component: defaults,
// an optional .env file and environment, a JSON overlay, and command-line
// flags, applied in that order.
package config

import "time"

const (
	UploadBackendLocal = "local"
	UploadBackendS3    = "s3"
)

// Config holds runtime settings for the Storyku API server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - DatabaseDriver: "mysql", "postgres" or "sqlite".
//   - DatabaseDSN: driver-specific DSN.
//   - UploadBackend: "local" (UploadDir) or "s3".
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - LogLevel: slog level name.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDriver   string
	DatabaseDSN      string
	UploadBackend    string
	UploadDir        string
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
	LogLevel         string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults matching a local
// MySQL install.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.DatabaseDriver = "mysql"
	c.DatabaseDSN = "root:@tcp(localhost:3306)/storyku_db"
	c.UploadBackend = UploadBackendLocal
	c.UploadDir = "uploads"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "storyku"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, then environment, then an
// optional JSON file, then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
