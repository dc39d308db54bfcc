// Package task parses and renders the checklist entries in day files.
//
// A task is one line of checkbox markdown:
//
//	* [x] Water plants
//	* [ ] Mow lawn
//	  * [~] Buy fuel
//
// Either * or - opens the line; the bracket holds a one-character state
// marker; everything after the closing bracket is the task name. Subtask
// lines are indented by two spaces (or a tab) and nest exactly one level.
//
// # State Markers
//
//   - "x": completed
//   - " ": incomplete
//   - "~": in progress
//   - "#": blocked
//
// Any other marker is a syntax error. A parent with subtasks derives its
// own state from them after every mutation: all subtasks completed makes
// the parent completed, otherwise any in-progress subtask makes it in
// progress, otherwise it is incomplete. Blocked is never derived.
//
// # Recurring Templates
//
// Recurring tasks live in a separate template file, one entry per line:
//
//	* [] @daily Feed the cat
//	* [] @friday Update the changelog
//
// The interval keyword after @ is matched case-insensitively. Intervals
// are evaluated against a calendar date with ISO weekday numbering
// (Monday=1 through Sunday=7). Template files have no tolerance for
// malformed lines: one bad line fails the whole load.
package task
