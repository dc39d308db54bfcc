package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/slack"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Post today's tasks to Slack",
		Long: `Posts today's task list to the configured Slack channel. Syncing again
on the same day updates the message that was posted earlier instead of
posting a new one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Slack == nil {
				return fmt.Errorf("slack is not configured: add a slack section to the settings file or set DAYBOOK_SLACK_TOKEN and DAYBOOK_SLACK_CHANNEL")
			}

			ws, err := a.openWorkspace()
			if err != nil {
				return err
			}
			d, err := ws.Today()
			if err != nil {
				return err
			}

			syncer, err := slack.NewSyncer(a.cfg.Slack, filepath.Join(config.StateDir(), "slack.json"))
			if err != nil {
				return err
			}

			updated, err := syncer.Sync(cmd.Context(), d)
			if err != nil {
				return err
			}

			date := d.Date.Format("2006-01-02")
			if updated {
				a.logger.Info("updated slack message", "channel", a.cfg.Slack.Channel, "date", date)
				fmt.Fprintln(cmd.OutOrStdout(), "Updated today's message.")
			} else {
				a.logger.Info("posted slack message", "channel", a.cfg.Slack.Channel, "date", date)
				fmt.Fprintln(cmd.OutOrStdout(), "Posted today's tasks.")
			}
			return nil
		},
	}
}
