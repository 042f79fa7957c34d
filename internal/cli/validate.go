package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var stacks int

	c := &cobra.Command{
		Use:   "validate <puzzle>",
		Short: "Parse a puzzle and dry-run it in both modes (nothing is saved)",
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

			_, n, err := craneSettings(ws, "", stacks)
			if err != nil {
				return err
			}

			uc := usecase.NewValidatePuzzle(ws.puzzles)
			if err := uc.Execute(cmd.Context(), path, n, domain.ModeSingle, domain.ModeBatch); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&stacks, "stacks", "n", 0, "Number of stacks (defaults to workspace config)")
	return c
}
