package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newDaysCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the day files in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}

			entries := ws.Index()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No day files yet. Run: daybook new")
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			today := time.Now().UTC().Format("2006-01-02")

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.Style().Options.SeparateRows = false

			t.AppendHeader(table.Row{
				text.FgGreen.Sprint("#"),
				text.FgGreen.Sprint("Date"),
				text.FgGreen.Sprint("Day"),
				text.FgGreen.Sprint("File"),
			})

			for i, e := range entries {
				date := e.Date.Format("2006-01-02")
				if date == today {
					date = text.FgHiGreen.Sprint(date)
				}
				t.AppendRow(table.Row{
					i + 1,
					date,
					e.Date.Weekday().String(),
					filepath.Base(e.Path),
				})
			}

			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the most recent N days")
	return cmd
}
