package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - Endpoint: base URL of the database HTTP API.
//   - Username/Password: credentials for sign-in. An empty password means
//     the CLI prompts for it interactively.
//   - Database: default database for schema and query commands.
//   - RequestTimeout: per-request timeout applied to the HTTP transport.
type Config struct {
	Endpoint       string
	Username       string
	Password       string
	Database       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
