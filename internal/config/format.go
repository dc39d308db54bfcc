package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FormatOverrideFile is the optional per-workspace format override file.
const FormatOverrideFile = ".daybook.toml"

// Format pins the file conventions of a workspace. DateLayout is fixed:
// day file names must parse as 2006-01-02 regardless of any override.
type Format struct {
	DayExtension  string `toml:"day_extension"`
	RecurringFile string `toml:"recurring_file"`
	DateLayout    string `toml:"-"`
}

// DefaultFormat returns the stock file conventions.
func DefaultFormat() *Format {
	return &Format{
		DayExtension:  "md",
		RecurringFile: ".recurring.md",
		DateLayout:    "2006-01-02",
	}
}

// LoadFormat reads the format override from a workspace directory. A missing
// override file yields the defaults; unknown keys are rejected.
func LoadFormat(dir string) (*Format, error) {
	format := DefaultFormat()

	path := filepath.Join(dir, FormatOverrideFile)
	meta, err := toml.DecodeFile(path, format)
	if errors.Is(err, fs.ErrNotExist) {
		return format, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse format override %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("format override %s: unknown key %q", path, undecoded[0].String())
	}

	return format, nil
}
