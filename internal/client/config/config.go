// Package config loads runtime configuration for the Storyku terminal client.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, after an optional .env file (STORYKU_SERVER_URL,
//     STORYKU_REQUEST_TIMEOUT).
//  3. Optional JSON file selected with -c or -config:
//
//     {
//     "server_url": "http://localhost:5000",
//     "request_timeout": "10s"
//     }
//
//  4. Command-line flags -a (server URL) and -t (request timeout, seconds).
package config

import "time"

// Config holds runtime settings for the Storyku CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with values matching a local development server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
