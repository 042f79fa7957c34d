package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/diagram"
	"github.com/aalvaropc/dockyard/internal/usecase"
)

func convertCmd() *cobra.Command {
	var out string
	var withInstructions bool
	var force bool

	c := &cobra.Command{
		Use:   "convert <diagram>",
		Short: "Convert a drawn crate diagram into the one-line-per-stack format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewConvertDiagram(diagram.NewConverter())

			text, err := uc.Execute(cmd.Context(), args[0], withInstructions)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			return writeOutput(out, text, force)
		},
	}

	c.Flags().StringVarP(&out, "output", "o", "", "Write to this file instead of stdout")
	c.Flags().BoolVar(&withInstructions, "with-instructions", false, "Append the moves so the output is a runnable puzzle")
	c.Flags().BoolVar(&force, "force", false, "Overwrite the output file if it exists")
	return c
}

func writeOutput(path, text string, force bool) error {
	if fileExists(path) && !force {
		return &domain.OpError{
			Op:   "cli.convert",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("output exists (use --force): %w", domain.ErrInvalidConfig),
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{Op: "cli.convert", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &domain.OpError{Op: "cli.convert", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
