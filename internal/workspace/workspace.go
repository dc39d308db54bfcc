// Package workspace ties a directory of day files to the recurring task
// template and implements the daily rollover.
//
// A workspace is a snapshot: the day index and the recurring template are
// read once at Open and not refreshed. Rollover creates today's file from
// the unfinished tasks of the most recent day plus whatever recurring
// tasks are due, deduplicated by name.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/day"
	"github.com/daybook-cli/daybook/internal/task"
)

// ErrNotADirectory reports a workspace path that exists but is not a
// directory.
var ErrNotADirectory = errors.New("not a directory")

// InvalidNameError reports a workspace path with no usable final component.
type InvalidNameError struct {
	Path string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("no workspace name in path %q", e.Path)
}

// ExistsError reports a rollover target that already exists.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("day file %s already exists", e.Path)
}

// Workspace is an opened day directory.
type Workspace struct {
	Name string
	Path string

	format    *config.Format
	recurring task.RecurringTasks
	index     day.Index
}

// Open reads the day index and the recurring template from dir. A missing
// template is fine; a malformed one is not.
func Open(dir string, format *config.Format) (*Workspace, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open workspace %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace %s: %w", dir, ErrNotADirectory)
	}

	name := filepath.Base(filepath.Clean(dir))
	if name == "/" || name == "." || name == ".." {
		return nil, &InvalidNameError{Path: dir}
	}

	index, err := day.BuildIndex(dir, format)
	if err != nil {
		return nil, err
	}

	recurring, err := task.LoadRecurring(filepath.Join(dir, format.RecurringFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Workspace{
		Name:      name,
		Path:      dir,
		format:    format,
		recurring: recurring,
		index:     index,
	}, nil
}

// Index returns the day files known at Open time, oldest first.
func (w *Workspace) Index() day.Index {
	return w.index
}

// Recurring returns the recurring task templates.
func (w *Workspace) Recurring() task.RecurringTasks {
	return w.recurring
}

// Today loads the day file for the current UTC date, or nil when there is
// none.
func (w *Workspace) Today() (*day.Day, error) {
	return w.TodayOn(time.Now().UTC())
}

// TodayOn loads the day file for the calendar day of t, or nil when there
// is none.
func (w *Workspace) TodayOn(t time.Time) (*day.Day, error) {
	entry, ok := w.index.On(t)
	if !ok {
		return nil, nil
	}
	return day.Load(entry.Path, w.format)
}

// Rollover creates the day file for the current UTC date.
func (w *Workspace) Rollover() (*day.Day, error) {
	return w.RolloverOn(time.Now().UTC())
}

// RolloverOn creates the day file for the calendar day of t. Tasks that
// are not completed carry over from the most recent day, subtasks and all.
// Recurring tasks due on t are appended unless a task with the same name
// is already present. The file is written before returning.
func (w *Workspace) RolloverOn(t time.Time) (*day.Day, error) {
	path := filepath.Join(w.Path, t.Format(w.format.DateLayout)+"."+w.format.DayExtension)

	if _, err := os.Stat(path); err == nil {
		return nil, &ExistsError{Path: path}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat day file %s: %w", path, err)
	}

	d, err := day.New(path, w.format)
	if err != nil {
		return nil, err
	}

	if prev, ok := w.index.Last(); ok {
		prevDay, err := day.Load(prev.Path, w.format)
		if err != nil {
			return nil, err
		}
		for _, carried := range prevDay.Tasks {
			if carried.State != task.StateCompleted {
				d.Tasks = append(d.Tasks, carried.Clone())
			}
		}
	}

	for _, due := range w.recurring.Due(t) {
		if !hasTask(d.Tasks, due.Name) {
			d.Tasks = append(d.Tasks, due.Task())
		}
	}

	if err := d.Write(); err != nil {
		return nil, err
	}
	return d, nil
}

func hasTask(tasks []task.Task, name string) bool {
	for _, t := range tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}
