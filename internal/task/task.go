package task

import (
	"fmt"
	"regexp"
	"strings"
)

// State represents a task's completion state.
type State string

const (
	StateCompleted  State = "completed"
	StateIncomplete State = "incomplete"
	StateInProgress State = "in-progress"
	StateBlocked    State = "blocked"
)

// stateMarkers maps each state to its checkbox marker. markerStates is
// the inverse; together they form the full bidirectional token table.
var stateMarkers = map[State]string{
	StateCompleted:  "x",
	StateIncomplete: " ",
	StateInProgress: "~",
	StateBlocked:    "#",
}

var markerStates = map[string]State{
	"x": StateCompleted,
	" ": StateIncomplete,
	"~": StateInProgress,
	"#": StateBlocked,
}

// Marker returns the checkbox character for s.
func (s State) Marker() string {
	return stateMarkers[s]
}

// StateForMarker maps a checkbox character back to its State. The second
// return is false for unknown markers.
func StateForMarker(marker string) (State, bool) {
	s, ok := markerStates[marker]
	return s, ok
}

// SyntaxError reports a line that does not match an expected line format.
type SyntaxError struct {
	Input string // the offending line
	Want  string // an example of the expected form
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cannot parse %q, expected the form %q", e.Input, e.Want)
}

// Task is a single checklist entry with at most one level of subtasks.
type Task struct {
	Name     string
	State    State
	Subtasks []Task
}

var taskPattern = regexp.MustCompile(`^[*-]\s?\[(.?)\]\s?(.+)$`)

// Parse parses one checklist line into a Task.
func Parse(line string) (Task, error) {
	m := taskPattern.FindStringSubmatch(line)
	if m == nil {
		return Task{}, &SyntaxError{Input: line, Want: "* [x] Task name"}
	}
	state, ok := StateForMarker(m[1])
	if !ok {
		return Task{}, &SyntaxError{Input: line, Want: "* [x] Task name"}
	}
	return Task{Name: m[2], State: state}, nil
}

// String renders the task and its subtasks in day-file form. Every line
// is newline terminated; subtask lines are indented by two spaces.
func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "* [%s] %s\n", t.State.Marker(), t.Name)
	for _, sub := range t.Subtasks {
		fmt.Fprintf(&b, "  * [%s] %s\n", sub.State.Marker(), sub.Name)
	}
	return b.String()
}

// HasSubtasks reports whether the task has any subtasks.
func (t Task) HasSubtasks() bool {
	return len(t.Subtasks) > 0
}

// Clone returns a deep copy of the task and its subtasks.
func (t Task) Clone() Task {
	c := t
	if len(t.Subtasks) > 0 {
		c.Subtasks = make([]Task, len(t.Subtasks))
		for i, sub := range t.Subtasks {
			c.Subtasks[i] = sub.Clone()
		}
	}
	return c
}

// DeriveState computes a parent's state from its subtasks: all completed
// wins, otherwise any in-progress wins, otherwise incomplete. Blocked is
// never derived. The second return is false when subtasks is empty, in
// which case the caller's state must be left untouched.
func DeriveState(subtasks []Task) (State, bool) {
	if len(subtasks) == 0 {
		return "", false
	}
	completed := 0
	inProgress := false
	for _, sub := range subtasks {
		switch sub.State {
		case StateCompleted:
			completed++
		case StateInProgress:
			inProgress = true
		}
	}
	switch {
	case completed == len(subtasks):
		return StateCompleted, true
	case inProgress:
		return StateInProgress, true
	default:
		return StateIncomplete, true
	}
}

func (t *Task) rederive() {
	if s, ok := DeriveState(t.Subtasks); ok {
		t.State = s
	}
}

// AddSubtask appends sub and re-derives the parent state.
func (t *Task) AddSubtask(sub Task) {
	t.Subtasks = append(t.Subtasks, sub)
	t.rederive()
}

// RemoveSubtask removes the subtask at index i and re-derives the parent
// state. It returns the removed task, or false when i is out of range.
func (t *Task) RemoveSubtask(i int) (Task, bool) {
	if i < 0 || i >= len(t.Subtasks) {
		return Task{}, false
	}
	removed := t.Subtasks[i]
	t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
	t.rederive()
	return removed, true
}

// CompleteSubtask marks the subtask at index i completed and re-derives
// the parent state. It returns false when i is out of range.
func (t *Task) CompleteSubtask(i int) bool {
	if i < 0 || i >= len(t.Subtasks) {
		return false
	}
	t.Subtasks[i].State = StateCompleted
	t.rederive()
	return true
}
