// Package config handles settings loading and defaults.
//
// Settings are loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. Settings file (~/.daybook/config.json, validated against a bundled JSON Schema)
// 3. Environment variables (DAYBOOK_*)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// The package also owns the workspace file Format: the day file extension
// and the recurring template name, overridable per workspace through an
// optional .daybook.toml file.
package config
