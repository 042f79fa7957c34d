package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/logger"
	"github.com/aalvaropc/dockyard/internal/ports"
	"github.com/aalvaropc/dockyard/internal/ui/report"
	"github.com/aalvaropc/dockyard/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var mode string
	var stacks int
	var format string
	var save bool
	var both bool
	var verbose bool

	c := &cobra.Command{
		Use:   "run <puzzle>",
		Short: "Simulate a puzzle and print the top crate of every stack",
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

			var store ports.ArtifactStore
			if save {
				store = ws.store
			}
			uc := usecase.NewRunPuzzle(ws.puzzles, store, usecase.WithLogger(logger.L()))

			if both {
				runs, err := uc.ExecuteModes(cmd.Context(), path, n, domain.ModeSingle, domain.ModeBatch)
				if err != nil {
					return err
				}
				return printRuns(os.Stdout, runs, format)
			}

			run, runID, err := uc.Execute(cmd.Context(), usecase.RunRequest{
				PuzzlePath: path,
				Mode:       m,
				Stacks:     n,
			})
			if err != nil {
				if verbose {
					printPartial(os.Stderr, run)
				}
				return err
			}

			if verbose && (format == "pretty" || format == "") {
				printPrettyRun(os.Stdout, run, runID)
				return nil
			}
			return printRun(os.Stdout, run, runID, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&mode, "mode", "m", "", "Move mode: single|batch (defaults to workspace config)")
	c.Flags().IntVarP(&stacks, "stacks", "n", 0, "Number of stacks (defaults to workspace config)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|markdown")
	c.Flags().BoolVar(&save, "save", false, "Save the run report under runs/")
	c.Flags().BoolVar(&both, "both", false, "Run single and batch mode on the same input")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print run details and final stacks")
	return c
}

func printRun(w io.Writer, run domain.RunResult, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "markdown", "md":
		return report.Write(w, report.Markdown([]domain.RunResult{run}, runID))
	case "pretty", "":
		fmt.Fprintf(w, "The top of the stacks is %s\n", run.Tops)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|markdown)", format)
	}
}

func printRuns(w io.Writer, runs []domain.RunResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"runs": runs})
	case "markdown", "md":
		return report.Write(w, report.Markdown(runs, ""))
	case "pretty", "":
		for _, r := range runs {
			fmt.Fprintf(w, "%s: %s\n", r.Mode, r.Tops)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|markdown)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult, runID string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Puzzle:   %s\n", run.PuzzleName)
	fmt.Fprintf(w, "Mode:     %s\n", run.Mode)
	fmt.Fprintf(w, "Steps:    %d\n", run.Steps)
	fmt.Fprintf(w, "Started:  %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
	fmt.Fprintln(w)

	printStacks(w, run.Final)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "The top of the stacks is %s\n", run.Tops)
}

// printPartial shows the last good state of a failed run.
func printPartial(w io.Writer, run domain.RunResult) {
	if len(run.Final) == 0 {
		return
	}
	fmt.Fprintf(w, "State after %d step(s):\n", run.Steps)
	printStacks(w, run.Final)
}

func printStacks(w io.Writer, stacks []string) {
	for i, s := range stacks {
		if s == "" {
			s = "-"
		}
		fmt.Fprintf(w, "  %d  %s\n", i+1, s)
	}
}
