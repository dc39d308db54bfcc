package task

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/daybook-cli/daybook/internal/utils"
)

// Interval is a recurrence rule evaluated against a calendar date. Its
// string value is the lowercase keyword used after @ in template lines.
type Interval string

const (
	IntervalDaily     Interval = "daily"
	IntervalWeekly    Interval = "weekly"
	IntervalMonthly   Interval = "monthly"
	IntervalWeekday   Interval = "weekday"
	IntervalWeekend   Interval = "weekend"
	IntervalMonday    Interval = "monday"
	IntervalTuesday   Interval = "tuesday"
	IntervalWednesday Interval = "wednesday"
	IntervalThursday  Interval = "thursday"
	IntervalFriday    Interval = "friday"
	IntervalSaturday  Interval = "saturday"
	IntervalSunday    Interval = "sunday"
)

var intervals = map[string]Interval{
	"daily":     IntervalDaily,
	"weekly":    IntervalWeekly,
	"monthly":   IntervalMonthly,
	"weekday":   IntervalWeekday,
	"weekend":   IntervalWeekend,
	"monday":    IntervalMonday,
	"tuesday":   IntervalTuesday,
	"wednesday": IntervalWednesday,
	"thursday":  IntervalThursday,
	"friday":    IntervalFriday,
	"saturday":  IntervalSaturday,
	"sunday":    IntervalSunday,
}

// IntervalError reports an unknown recurrence interval keyword.
type IntervalError struct {
	Input string
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("unknown recurrence interval %q", e.Input)
}

// ParseInterval maps a keyword to its Interval, case-insensitively.
func ParseInterval(word string) (Interval, error) {
	iv, ok := intervals[strings.ToLower(word)]
	if !ok {
		return "", &IntervalError{Input: word}
	}
	return iv, nil
}

// DueOn reports whether the interval lands on date. Weekly recurrences
// land on Monday.
func (iv Interval) DueOn(date time.Time) bool {
	switch iv {
	case IntervalDaily:
		return true
	case IntervalWeekly, IntervalMonday:
		return isoWeekday(date) == 1
	case IntervalTuesday:
		return isoWeekday(date) == 2
	case IntervalWednesday:
		return isoWeekday(date) == 3
	case IntervalThursday:
		return isoWeekday(date) == 4
	case IntervalFriday:
		return isoWeekday(date) == 5
	case IntervalSaturday:
		return isoWeekday(date) == 6
	case IntervalSunday:
		return isoWeekday(date) == 7
	case IntervalMonthly:
		return date.Day() == 1
	case IntervalWeekday:
		return isoWeekday(date) <= 5
	case IntervalWeekend:
		return isoWeekday(date) > 5
	}
	return false
}

// isoWeekday numbers weekdays Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// RecurringTask is one template entry from the recurring file.
type RecurringTask struct {
	Name     string
	Interval Interval
}

var recurringPattern = regexp.MustCompile(`^[*-]\s?\[\s?\]\s?@(\w+)\s(.+)$`)

// ParseRecurring parses one template line.
func ParseRecurring(line string) (RecurringTask, error) {
	m := recurringPattern.FindStringSubmatch(line)
	if m == nil {
		return RecurringTask{}, &SyntaxError{Input: line, Want: "* [] @daily Task name"}
	}
	iv, err := ParseInterval(m[1])
	if err != nil {
		return RecurringTask{}, err
	}
	return RecurringTask{Name: m[2], Interval: iv}, nil
}

// String renders the template in recurring-file form.
func (r RecurringTask) String() string {
	return fmt.Sprintf("* [] @%s %s", r.Interval, r.Name)
}

// Task materializes the template as a fresh incomplete task.
func (r RecurringTask) Task() Task {
	return Task{Name: r.Name, State: StateIncomplete}
}

// RecurringTasks is the parsed contents of a recurring template file.
type RecurringTasks []RecurringTask

// ParseRecurringList parses template content, one entry per line. Any
// malformed line, including an empty one, fails the whole parse.
func ParseRecurringList(content string) (RecurringTasks, error) {
	var list RecurringTasks
	for _, line := range utils.Lines(content) {
		rt, err := ParseRecurring(line)
		if err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, nil
}

// LoadRecurring reads and parses a recurring template file. The caller
// decides whether a missing file is an error; it surfaces as a wrapped
// fs.ErrNotExist.
func LoadRecurring(path string) (RecurringTasks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recurring file: %w", err)
	}
	list, err := ParseRecurringList(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse recurring file %s: %w", path, err)
	}
	return list, nil
}

// Due returns the templates due on date, preserving file order.
func (l RecurringTasks) Due(date time.Time) RecurringTasks {
	var due RecurringTasks
	for _, rt := range l {
		if rt.Interval.DueOn(date) {
			due = append(due, rt)
		}
	}
	return due
}
