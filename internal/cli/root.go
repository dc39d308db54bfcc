// Package cli implements the daybook command tree.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/logging"
	"github.com/daybook-cli/daybook/internal/workspace"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries the settings and logger shared by the subcommands. Both are
// populated by the root command's PersistentPreRunE before any RunE fires.
type app struct {
	cfg    *config.Config
	logger *log.Logger

	configPath string
	workDir    string
	logLevel   string
	logFormat  string
}

// Execute runs the daybook CLI with the given arguments.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: "Day-to-day task lists in plain text",
		Long: `Daybook keeps one task list per day as a plain Markdown file.

Each morning "daybook new" rolls the unfinished tasks over from the most
recent day and appends whatever recurring tasks are due. The files stay
ordinary text: edit them with anything, keep them in git, grep them.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (default ~/.daybook/config.json)")
	flags.StringVarP(&a.workDir, "workdir", "w", "", "workspace directory holding the day files")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json or logfmt")

	cmd.AddCommand(
		newNewCmd(a),
		newTodayCmd(a),
		newDaysCmd(a),
		newSyncCmd(a),
		newTUICmd(a),
		newDoctorCmd(a),
	)

	return cmd
}

// setup loads the settings and builds the logger. Flags win over both the
// settings file and the environment.
func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.workDir != "" {
		cfg.WorkDir = config.ExpandPath(a.workDir)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}

	a.cfg = cfg
	a.logger = logging.FromConfig(cfg)
	return nil
}

// resolveWorkDir turns the configured workspace path into an absolute
// directory and loads any format override sitting in it.
func (a *app) resolveWorkDir() (string, *config.Format, error) {
	if a.cfg.WorkDir == "" {
		return "", nil, fmt.Errorf("no workspace configured: set work_dir in the settings file, DAYBOOK_WORKDIR or --workdir")
	}

	dir, err := filepath.Abs(a.cfg.WorkDir)
	if err != nil {
		return "", nil, fmt.Errorf("resolve workspace path %s: %w", a.cfg.WorkDir, err)
	}

	format, err := config.LoadFormat(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, format, nil
}

func (a *app) openWorkspace() (*workspace.Workspace, error) {
	dir, format, err := a.resolveWorkDir()
	if err != nil {
		return nil, err
	}
	return workspace.Open(dir, format)
}
