// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/day"
	"github.com/daybook-cli/daybook/internal/task"
	"github.com/daybook-cli/daybook/internal/workspace"
)

// RunTUI starts the day viewer for the workspace at dir.
func RunTUI(ctx context.Context, dir string, format *config.Format) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newDayModel(dir, format)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type dayModel struct {
	dir    string
	format *config.Format

	today        *day.Day
	loadErr      error
	filter       task.State
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newDayModel(dir string, format *config.Format) *dayModel {
	return &dayModel{
		dir:          dir,
		format:       format,
		tickInterval: time.Second,
	}
}

func (m *dayModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = task.StateIncomplete
			return m, nil
		case "2":
			m.filter = task.StateInProgress
			return m, nil
		case "3":
			m.filter = task.StateBlocked
			return m, nil
		case "4":
			m.filter = task.StateCompleted
			return m, nil
		case "0":
			m.filter = ""
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

// refresh re-reads the workspace; the viewer never writes.
func (m *dayModel) refresh() {
	w, err := workspace.Open(m.dir, m.format)
	if err != nil {
		m.loadErr = err
		m.today = nil
		return
	}
	today, err := w.Today()
	if err != nil {
		m.loadErr = err
		m.today = nil
		return
	}
	m.loadErr = nil
	m.today = today
}

func (m *dayModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", m.filter))
	}

	if m.loadErr != nil {
		b.WriteString("Error loading workspace:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}
	if m.today == nil {
		b.WriteString("No day file for today. Run daybook new to create one.\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	writeOverview(&b, m.today)
	writeTasks(&b, m.today, m.filter)
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeTitle(b *strings.Builder) {
	title := "Daybook"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeOverview(b *strings.Builder, d *day.Day) {
	counts := map[task.State]int{}
	for _, t := range d.Tasks {
		counts[t.State]++
		for _, sub := range t.Subtasks {
			counts[sub.State]++
		}
	}

	b.WriteString(d.Date.Format("Monday, 2 January 2006") + "\n\n")
	b.WriteString(fmt.Sprintf("  Open: %d  In Progress: %d  Blocked: %d  Done: %d\n\n",
		counts[task.StateIncomplete],
		counts[task.StateInProgress],
		counts[task.StateBlocked],
		counts[task.StateCompleted],
	))
}

func writeTasks(b *strings.Builder, d *day.Day, filter task.State) {
	b.WriteString("Tasks\n\n")

	shown := 0
	for _, t := range d.Tasks {
		if filter != "" && t.State != filter {
			continue
		}
		b.WriteString(formatTask(t, 1))
		for _, sub := range t.Subtasks {
			b.WriteString(formatTask(sub, 2))
		}
		shown++
	}
	if shown == 0 {
		b.WriteString("  Nothing to show.\n")
	}
	b.WriteString("\n")
}

func formatTask(t task.Task, depth int) string {
	indent := strings.Repeat("  ", depth)
	return fmt.Sprintf("%s[%s] %s\n", indent, t.State.Marker(), t.Name)
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh now\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter by incomplete\n")
	b.WriteString("  2            Filter by in-progress\n")
	b.WriteString("  3            Filter by blocked\n")
	b.WriteString("  4            Filter by completed\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s\n", interval))
}

// IsTTY returns true if stdout is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
