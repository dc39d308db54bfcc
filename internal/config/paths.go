package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands environment variables and a leading ~ in paths.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}

// DefaultPath returns the default settings file location. The
// DAYBOOK_CONFIG environment variable overrides it.
func DefaultPath() string {
	if v := os.Getenv("DAYBOOK_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".daybook", "config.json")
	}
	return filepath.Join(home, ".daybook", "config.json")
}

// StateDir returns the directory holding sync state files.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".daybook", "state")
	}
	return filepath.Join(home, ".daybook", "state")
}
