// Package day reads and writes the daily files of a workspace.
//
// A day file is named after its date (2024-07-01.md) and holds a block of
// task lines followed by free-form notes. Lines that do not parse as tasks
// are kept as notes; everything else round-trips through Render.
package day

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/task"
	"github.com/daybook-cli/daybook/internal/utils"
)

// Day is one daily file: its tasks and whatever notes surround them.
type Day struct {
	Path  string
	Date  time.Time
	Tasks []task.Task
	Notes string
}

// InvalidPathError reports a day file whose name does not contain a date.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("no date in day file name %q, want YYYY-MM-DD", e.Path)
}

// DateFromPath parses the date encoded in a day file name.
func DateFromPath(path, layout string) (time.Time, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	date, err := time.Parse(layout, stem)
	if err != nil {
		return time.Time{}, &InvalidPathError{Path: path}
	}
	return date, nil
}

// New builds an empty day for the given path. The date comes from the
// file name.
func New(path string, format *config.Format) (*Day, error) {
	date, err := DateFromPath(path, format.DateLayout)
	if err != nil {
		return nil, err
	}
	return &Day{Path: path, Date: date}, nil
}

// Load reads and parses the day file at path.
func Load(path string, format *config.Format) (*Day, error) {
	d, err := New(path, format)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read day file %s: %w", path, err)
	}

	d.parse(string(content))
	return d, nil
}

// parse splits content into tasks and notes. An indented task line joins
// the most recent top-level task as a subtask; the parent keeps the state
// written in the file. Any line that fails to parse is appended to Notes
// exactly as it appears, with no separator between lines.
func (d *Day) parse(content string) {
	var notes strings.Builder

	for _, line := range utils.Lines(content) {
		body, indented := stripIndent(line)

		t, err := task.Parse(body)
		if err != nil {
			notes.WriteString(line)
			continue
		}

		if indented && len(d.Tasks) > 0 {
			last := &d.Tasks[len(d.Tasks)-1]
			last.Subtasks = append(last.Subtasks, t)
			continue
		}
		d.Tasks = append(d.Tasks, t)
	}

	d.Notes = notes.String()
}

// stripIndent removes one leading two-space or tab unit.
func stripIndent(line string) (string, bool) {
	if strings.HasPrefix(line, "  ") {
		return line[2:], true
	}
	if strings.HasPrefix(line, "\t") {
		return line[1:], true
	}
	return line, false
}

// Render serializes the day: task blocks, a blank separator line, then
// the notes.
func (d *Day) Render() string {
	var b strings.Builder
	for _, t := range d.Tasks {
		b.WriteString(t.String())
	}
	b.WriteString("\n")
	b.WriteString(d.Notes)
	return b.String()
}

// Write persists the day to its path.
func (d *Day) Write() error {
	if err := os.WriteFile(d.Path, []byte(d.Render()), 0644); err != nil {
		return fmt.Errorf("write day file %s: %w", d.Path, err)
	}
	return nil
}
