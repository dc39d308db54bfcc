package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start today's day file",
		Long: `Creates the day file for today. Tasks that were not completed on the
most recent day carry over, then recurring tasks due today are appended
unless a task with the same name already carried over. Fails when
today's file already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}

			d, err := ws.Rollover()
			if err != nil {
				return err
			}

			a.logger.Info("created day file", "path", d.Path, "tasks", len(d.Tasks))
			fmt.Fprintln(cmd.OutOrStdout(), d.Path)
			return nil
		},
	}
}
