// Package slack posts the current day to a Slack channel.
//
// Each day maps to one channel message: the first sync posts it, later
// syncs the same day update it in place. Message timestamps are recorded
// in a JSON state file keyed by date, outside the workspace.
//
// # Message Format
//
// Tasks render as emoji lines (:todo:, :todo_done:, :todo_doing:,
// :todo_paused:). A task with subtasks becomes a bold header followed by
// its subtask lines, set off by blank lines. Configured rewrites apply to
// leaf and subtask names.
package slack
