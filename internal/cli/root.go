package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dockyard/internal/buildinfo"
	"github.com/aalvaropc/dockyard/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		logger.L().Error("command.failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "dockyard",
		Short:        "Dockyard: crate stack crane simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cleanup = setupLogging(c.Name(), debug)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				_ = cleanup()
				cleanup = nil
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .dockyard/logs/dockyard.log")

	cmd.AddCommand(
		runCmd(),
		validateCmd(),
		convertCmd(),
		watchCmd(),
		puzzlesCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging opens the log file at the workspace root. Outside a workspace
// nothing is written unless --debug is set, in which case the current
// directory is used. Logging failures never abort a command.
func setupLogging(command string, debug bool) func() error {
	root, found, err := resolveWorkspaceRoot("")
	if err != nil || (!found && !debug) {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:    root,
		Debug:   debug,
		Command: command,
		Version: buildinfo.Version,
	})
	if err != nil {
		return nil
	}
	return cleanup
}
