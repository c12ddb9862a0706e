package commands

import (
	"fmt"
	"io"

	"github.com/dyluth/forge/internal/config"
	"github.com/dyluth/forge/internal/dashboard"
	"github.com/dyluth/forge/internal/printer"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// console is the state shared by every command in one process: the
// dashboard session and the flags needed to build it.
type console struct {
	dash       *dashboard.Dashboard
	configPath string
	inShell    bool
	echoing    bool
}

// session returns the dashboard, loading it from the configuration on first use.
func (c *console) session() (*dashboard.Dashboard, error) {
	if c.dash != nil {
		return c.dash, nil
	}

	path, explicit := config.ResolvePath(c.configPath)
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"failed to load configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{
				"Fix the file and try again",
				"Write a fresh one:\n  forge init --force",
			},
		)
	}

	d, err := dashboard.New(cfg)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"failed to start board session",
			err.Error(),
			map[string]string{"Config": path},
			[]string{"Check the seed tasks in the configuration for repeated IDs"},
		)
	}

	c.dash = d
	return d, nil
}

// NewRootCmd builds the forge command tree around d. A nil d is loaded from
// --config (or forge.yml, or the built-in demo board) when a command first
// needs it.
func NewRootCmd(d *dashboard.Dashboard) *cobra.Command {
	return newRootCmd(&console{dash: d})
}

func newRootCmd(c *console) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Forge - Fabrication board console",
		Long: `Forge tracks robotics fabrication work on a four-stage board:
BACKLOG → FABRICATION → ASSEMBLY → DEPLOYMENT.

Each invocation runs against an in-memory board seeded from forge.yml (or the
built-in demo board). Use 'forge shell' to keep one board across commands.`,
		// Prevent silent success when unknown flags are passed to root command
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		// We print formatted colored errors directly in the printer package
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	if version != "" {
		rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		fmt.Sprintf("Path to configuration file (default: $%s or %s)", config.EnvConfigPath, config.DefaultPath))

	rootCmd.AddCommand(
		newBoardCmd(c),
		newTasksCmd(c),
		newAssigneesCmd(c),
		newTaskCmd(c),
		newInspectCmd(c),
		newResourcesCmd(c),
		newCalibrateCmd(c),
		newInitCmd(c),
		newShellCmd(c),
	)
	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	return run(NewRootCmd(nil), nil)
}

// run executes cmd, printing any error the printer has not already reported.
// A nil args leaves cobra to read os.Args.
func run(cmd *cobra.Command, args []string) error {
	if args != nil {
		cmd.SetArgs(args)
	}
	err := cmd.Execute()
	if err != nil && !printer.IsReported(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return err
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// out is where commands write tables and JSON.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
