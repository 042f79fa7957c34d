package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func puzzlesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "puzzles",
		Short: "Manage puzzles in a workspace",
	}

	c.AddCommand(puzzlesListCmd())
	return c
}

func puzzlesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List puzzle files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.puzzles.ListPuzzles(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no puzzles found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, err := filepath.Rel(ws.root, r.Path)
				if err != nil {
					rel = r.Path
				}
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
