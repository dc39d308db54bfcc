package slack

import (
	"strings"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/day"
	"github.com/daybook-cli/daybook/internal/task"
)

// emoji returns the Slack emoji for a task state.
func emoji(state task.State) string {
	switch state {
	case task.StateCompleted:
		return ":todo_done:"
	case task.StateInProgress:
		return ":todo_doing:"
	case task.StateBlocked:
		return ":todo_paused:"
	default:
		return ":todo:"
	}
}

// RenderMessage formats a day as Slack mrkdwn. Leaf tasks render as one
// emoji line each. A task with subtasks renders as a bold header with its
// subtasks beneath it, set off by blank lines. Rewrites apply to leaf and
// subtask names; group headers keep the raw name.
func RenderMessage(d *day.Day, rewrites []config.Rewrite) string {
	var b strings.Builder

	for _, t := range d.Tasks {
		if t.HasSubtasks() {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString("*" + t.Name + "*\n")
			for _, sub := range t.Subtasks {
				b.WriteString(emoji(sub.State) + " " + rewriteName(sub.Name, rewrites) + "\n")
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString(emoji(t.State) + " " + rewriteName(t.Name, rewrites) + "\n")
	}

	return b.String()
}

// rewriteName applies each configured rewrite in order.
func rewriteName(name string, rewrites []config.Rewrite) string {
	for _, r := range rewrites {
		name = r.Apply(name)
	}
	return name
}
