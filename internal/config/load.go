package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Load reads the settings file at path, validates it against the bundled
// schema and applies environment overrides. A missing file is not an error;
// the defaults are used and the environment still applies.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No settings file, defaults plus environment.
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err := validateSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	cfg.WorkDir = ExpandPath(cfg.WorkDir)

	return cfg, nil
}

// loadFromEnv overrides config from DAYBOOK_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("DAYBOOK_WORKDIR"); v != "" {
		cfg.WorkDir = v
	}
	if v := os.Getenv("DAYBOOK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DAYBOOK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("DAYBOOK_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("DAYBOOK_SLACK_TOKEN"); v != "" {
		if cfg.Slack == nil {
			cfg.Slack = &SlackConfig{}
		}
		cfg.Slack.Token = v
	}
	if v := os.Getenv("DAYBOOK_SLACK_CHANNEL"); v != "" {
		if cfg.Slack == nil {
			cfg.Slack = &SlackConfig{}
		}
		cfg.Slack.Channel = v
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
