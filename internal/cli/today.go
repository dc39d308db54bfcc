package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTodayCmd(a *app) *cobra.Command {
	var notes bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}

			d, err := ws.Today()
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("no day file for today, run: daybook new")
			}

			out := cmd.OutOrStdout()
			if notes {
				fmt.Fprint(out, d.Render())
				return nil
			}
			for _, t := range d.Tasks {
				fmt.Fprint(out, t.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&notes, "notes", true, "include the day's notes")
	return cmd
}
