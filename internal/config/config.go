package config

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Defaults applied when the settings file omits a value.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the daybook settings.
type Config struct {
	// WorkDir is the workspace directory holding the day files.
	WorkDir string `json:"work_dir"`

	// Slack enables syncing the current day to a Slack channel.
	Slack *SlackConfig `json:"slack,omitempty"`

	// Logging configuration
	LogLevel      string `json:"log_level,omitempty"`
	LogFormat     string `json:"log_format,omitempty"`
	LogTimestamps bool   `json:"log_timestamps,omitempty"`
}

// SlackConfig holds the credentials and rewrite rules for the sync command.
type SlackConfig struct {
	Token    string    `json:"token"`
	Channel  string    `json:"channel"`
	Rewrites []Rewrite `json:"rewrites,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Rewrite is a regular-expression substitution applied to task names before
// they are sent to Slack. To may reference capture groups ($1, $2, ...).
type Rewrite struct {
	From string
	To   string

	pattern *regexp.Regexp
}

// NewRewrite compiles a rewrite rule.
func NewRewrite(from, to string) (Rewrite, error) {
	pattern, err := regexp.Compile(from)
	if err != nil {
		return Rewrite{}, &RewriteError{Pattern: from, Err: err}
	}
	return Rewrite{From: from, To: to, pattern: pattern}, nil
}

// UnmarshalJSON decodes a rewrite rule and compiles its pattern, so a bad
// pattern fails at config load rather than at sync time.
func (r *Rewrite) UnmarshalJSON(data []byte) error {
	var raw struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rewrite, err := NewRewrite(raw.From, raw.To)
	if err != nil {
		return err
	}
	*r = rewrite
	return nil
}

// Apply runs the substitution on s.
func (r Rewrite) Apply(s string) string {
	if r.pattern == nil {
		return s
	}
	return r.pattern.ReplaceAllString(s, r.To)
}

// RewriteError reports a rewrite rule whose pattern does not compile.
type RewriteError struct {
	Pattern string
	Err     error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("invalid rewrite pattern %q: %v", e.Pattern, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}
