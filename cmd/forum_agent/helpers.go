package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/forum-agent/internal/config"
	"github.com/jonathan/forum-agent/internal/forumapi"
	"github.com/jonathan/forum-agent/internal/logging"
)

// resolveConfig builds the effective configuration for one command run:
// config file values, overlaid with env vars, overlaid with explicitly set
// CLI flags. Flags win, env loses to them, the file is the floor.
func resolveConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	envCfg := config.FromEnv()
	cfg := envCfg.MergeWithDefaults(fileCfg)

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("media-base-url") {
		cfg.MediaBaseURL, _ = cmd.Flags().GetString("media-base-url")
	}
	if cmd.Flags().Changed("session-token") {
		cfg.SessionToken, _ = cmd.Flags().GetString("session-token")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds, _ = cmd.Flags().GetInt("timeout")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.BaseURL == "" {
		return config.Config{}, fmt.Errorf("forum API base URL is required (--base-url flag, %s env var or config file)", config.EnvBaseURL)
	}

	return cfg, nil
}

// addClientFlags registers the flags every API-backed command shares
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().String("base-url", "", "Forum API base URL (defaults to "+config.EnvBaseURL+" env var)")
	cmd.Flags().String("media-base-url", "", "Base URL for media assets (defaults to "+config.EnvMediaBaseURL+" env var)")
	cmd.Flags().String("session-token", "", "Session cookie value (defaults to "+config.EnvSessionToken+" env var)")
	cmd.Flags().Int("timeout", 0, "HTTP timeout in seconds")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().BoolP("verbose", "v", false, "Print detailed debug information")
}

func newLogger(cfg config.Config) logging.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Verbose && cfg.LogLevel == "" {
		level = logging.DebugLevel
	}
	return logging.New(logging.Options{Level: level, Out: os.Stderr})
}

func newClient(cfg config.Config, log logging.Logger) (*forumapi.Client, error) {
	return forumapi.New(forumapi.Options{
		BaseURL:       cfg.BaseURL,
		MediaBaseURL:  cfg.MediaBaseURL,
		SessionToken:  cfg.SessionToken,
		SessionCookie: cfg.SessionCookie,
		Timeout:       cfg.Timeout(),
		Logger:        log,
	})
}
