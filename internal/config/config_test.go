package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads valid JSON file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		content := `{
			"base_url": "https://forum.example.com/api",
			"session_token": "abc123",
			"timeout_seconds": 10,
			"verbose": true
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "https://forum.example.com/api", cfg.BaseURL)
		assert.Equal(t, "abc123", cfg.SessionToken)
		assert.Equal(t, 10, cfg.TimeoutSeconds)
		assert.True(t, cfg.Verbose)
	})

	t.Run("empty path returns error", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "valid https base url", cfg: Config{BaseURL: "https://forum.example.com"}},
		{name: "valid http base url", cfg: Config{BaseURL: "http://localhost:8000"}},
		{name: "bad scheme", cfg: Config{BaseURL: "ftp://forum.example.com"}, wantErr: true},
		{name: "missing host", cfg: Config{BaseURL: "https://"}, wantErr: true},
		{name: "bad media url", cfg: Config{MediaBaseURL: "not a url"}, wantErr: true},
		{name: "negative timeout", cfg: Config{TimeoutSeconds: -1}, wantErr: true},
		{name: "known log level", cfg: Config{LogLevel: "debug"}},
		{name: "unknown log level", cfg: Config{LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://forum.example.com/api")
	t.Setenv(EnvSessionToken, "tok")
	t.Setenv(EnvSessionCookie, "sid")

	cfg := FromEnv()
	assert.Equal(t, "https://forum.example.com/api", cfg.BaseURL)
	assert.Equal(t, "tok", cfg.SessionToken)
	assert.Equal(t, "sid", cfg.SessionCookie)
	assert.Empty(t, cfg.MediaBaseURL)
}

func TestMergeWithDefaults(t *testing.T) {
	t.Run("empty fields take defaults", func(t *testing.T) {
		cfg := Config{BaseURL: "https://cli.example.com"}
		defaults := Config{
			BaseURL:        "https://env.example.com",
			SessionToken:   "envtok",
			TimeoutSeconds: 15,
			LogLevel:       "warn",
		}

		merged := cfg.MergeWithDefaults(defaults)
		assert.Equal(t, "https://cli.example.com", merged.BaseURL)
		assert.Equal(t, "envtok", merged.SessionToken)
		assert.Equal(t, 15, merged.TimeoutSeconds)
		assert.Equal(t, "warn", merged.LogLevel)
	})

	t.Run("set fields win over defaults", func(t *testing.T) {
		cfg := Config{SessionToken: "mine", TimeoutSeconds: 5}
		merged := cfg.MergeWithDefaults(Config{SessionToken: "theirs", TimeoutSeconds: 60})
		assert.Equal(t, "mine", merged.SessionToken)
		assert.Equal(t, 5, merged.TimeoutSeconds)
	})
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, time.Duration(0), (&Config{}).Timeout())
	assert.Equal(t, 10*time.Second, (&Config{TimeoutSeconds: 10}).Timeout())
}
