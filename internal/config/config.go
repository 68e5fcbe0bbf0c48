// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Environment variable names recognized by FromEnv.
const (
	EnvBaseURL       = "FORUM_API_BASE_URL"
	EnvMediaBaseURL  = "FORUM_API_MEDIA_BASE_URL"
	EnvSessionToken  = "FORUM_SESSION_TOKEN"
	EnvSessionCookie = "FORUM_SESSION_COOKIE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// env vars and CLI flags.
type Config struct {
	// API
	BaseURL       string `json:"base_url,omitempty"`       // Forum API base URL
	MediaBaseURL  string `json:"media_base_url,omitempty"` // Base URL for media assets (logos, uploads)
	SessionToken  string `json:"session_token,omitempty"`  // Session cookie value for authenticated calls
	SessionCookie string `json:"session_cookie,omitempty"` // Session cookie name (defaults to "sessionid")

	// Behavior
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP timeout in seconds
	LogLevel       string `json:"log_level,omitempty"`       // debug, info, warn or error
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	return Config{
		BaseURL:       os.Getenv(EnvBaseURL),
		MediaBaseURL:  os.Getenv(EnvMediaBaseURL),
		SessionToken:  os.Getenv(EnvSessionToken),
		SessionCookie: os.Getenv(EnvSessionCookie),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		if err := validateURL(c.BaseURL); err != nil {
			return fmt.Errorf("config error: invalid 'base_url': %w", err)
		}
	}
	if c.MediaBaseURL != "" {
		if err := validateURL(c.MediaBaseURL); err != nil {
			return fmt.Errorf("config error: invalid 'media_base_url': %w", err)
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply env var and config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.MediaBaseURL == "" {
		result.MediaBaseURL = defaults.MediaBaseURL
	}
	if result.SessionToken == "" {
		result.SessionToken = defaults.SessionToken
	}
	if result.SessionCookie == "" {
		result.SessionCookie = defaults.SessionCookie
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout converts TimeoutSeconds to a duration, or zero when unset.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
