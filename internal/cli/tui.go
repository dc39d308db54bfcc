package cli

import (
	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/ui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Watch today's tasks in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, format, err := a.resolveWorkDir()
			if err != nil {
				return err
			}
			return ui.RunTUI(cmd.Context(), dir, format)
		},
	}
}
