package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dockyard/internal/infra/logger"
	"github.com/aalvaropc/dockyard/internal/ui/tui"
	"github.com/aalvaropc/dockyard/internal/usecase"
)

func watchCmd() *cobra.Command {
	var workspace string
	var mode string
	var stacks int
	var interval time.Duration

	c := &cobra.Command{
		Use:   "watch <puzzle>",
		Short: "Step through a puzzle interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolvePuzzlePath(ws, args[0])
			if err != nil {
				return err
			}

			m, n, err := craneSettings(ws, mode, stacks)
			if err != nil {
				return err
			}

			debug, _ := cmd.Flags().GetBool("debug")
			return tui.Run(cmd.Context(), tui.Deps{
				Tracer:     usecase.NewTracePuzzle(ws.puzzles),
				PuzzlePath: path,
				Stacks:     n,
				Mode:       m,
				Interval:   interval,
				Logger:     logger.L(),
				Debug:      debug,
			})
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&mode, "mode", "m", "", "Move mode: single|batch (defaults to workspace config)")
	c.Flags().IntVarP(&stacks, "stacks", "n", 0, "Number of stacks (defaults to workspace config)")
	c.Flags().DurationVar(&interval, "interval", 600*time.Millisecond, "Autoplay delay between steps")
	return c
}
