// Package config defines the CLI configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file and environment overrides on top via Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the tetra CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL points the client at an API root.
	BaseURL string `koanf:"base_url"`

	// SessionID pins paginated results server-side. Empty generates a
	// fresh one per process.
	SessionID string `koanf:"session_id"`

	// RateLimit caps outgoing requests per second. 0 disables
	// client-side pacing.
	RateLimit float64 `koanf:"rate_limit"`

	// MetricsAddr configures the /metrics listen address, e.g.
	// ":9090". Empty disables the metrics endpoint.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		BaseURL:   "https://ch.tetr.io/api",
		RateLimit: 1,
	}
}
