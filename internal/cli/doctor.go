package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/day"
	"github.com/daybook-cli/daybook/internal/task"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the daybook setup",
		Long:  `Runs diagnostic checks on the settings and the workspace and reports pass, warn or fail for each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			passed, warned, failed := 0, 0, 0
			check := func(name string, ok bool, detail string) {
				if ok {
					fmt.Fprintf(out, "  ✓ %s\n", name)
					passed++
				} else {
					fmt.Fprintf(out, "  ✗ %s: %s\n", name, detail)
					failed++
				}
			}
			warn := func(name string, detail string) {
				fmt.Fprintf(out, "  ! %s: %s\n", name, detail)
				warned++
			}

			fmt.Fprintln(out, "Settings:")
			cfgPath := a.configPath
			if cfgPath == "" {
				cfgPath = config.DefaultPath()
			}
			if _, err := os.Stat(cfgPath); err == nil {
				check(fmt.Sprintf("settings file (%s)", cfgPath), true, "")
			} else {
				warn("settings file", fmt.Sprintf("not found at %s, using defaults", cfgPath))
			}
			if a.cfg.Slack != nil {
				check(fmt.Sprintf("slack (channel %s)", a.cfg.Slack.Channel), true, "")
			} else {
				warn("slack", "not configured, daybook sync is unavailable")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Workspace:")

			dir := ""
			if a.cfg.WorkDir == "" {
				check("directory", false, "not configured: set work_dir, DAYBOOK_WORKDIR or --workdir")
			} else if abs, err := filepath.Abs(a.cfg.WorkDir); err != nil {
				check("directory", false, err.Error())
			} else if info, err := os.Stat(abs); err != nil {
				check("directory", false, err.Error())
			} else if !info.IsDir() {
				check("directory", false, fmt.Sprintf("%s is not a directory", abs))
			} else {
				dir = abs
				check(fmt.Sprintf("directory (%s)", dir), true, "")
			}

			if dir != "" {
				format, err := config.LoadFormat(dir)
				if err != nil {
					check("format override", false, err.Error())
					format = config.DefaultFormat()
				} else if _, err := os.Stat(filepath.Join(dir, config.FormatOverrideFile)); err == nil {
					check(fmt.Sprintf("format override (day files are *.%s)", format.DayExtension), true, "")
				}

				recurringPath := filepath.Join(dir, format.RecurringFile)
				if _, err := os.Stat(recurringPath); err != nil {
					warn("recurring template", fmt.Sprintf("no %s in workspace", format.RecurringFile))
				} else if recurring, err := task.LoadRecurring(recurringPath); err != nil {
					check("recurring template", false, err.Error())
				} else {
					check(fmt.Sprintf("recurring template (%d tasks)", len(recurring)), true, "")
				}

				index, err := day.BuildIndex(dir, format)
				switch {
				case err != nil:
					check("day index", false, err.Error())
				case len(index) == 0:
					warn("day index", "no day files yet, run: daybook new")
				default:
					check(fmt.Sprintf("day index (%d day files)", len(index)), true, "")
					if _, ok := index.On(time.Now().UTC()); ok {
						check("today's file", true, "")
					} else {
						warn("today's file", "missing, run: daybook new")
					}
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Results: %d passed, %d warnings, %d failed\n", passed, warned, failed)

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
