package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/aalvaropc/dockyard/internal/domain"
)

// Markdown builds a short report for one or more runs of the same puzzle.
func Markdown(runs []domain.RunResult, runID string) string {
	var b strings.Builder
	if len(runs) == 0 {
		return "_no runs_\n"
	}

	fmt.Fprintf(&b, "# %s\n\n", titleOf(runs[0]))
	if runID != "" {
		fmt.Fprintf(&b, "Run ID: `%s`\n\n", runID)
	}

	for _, r := range runs {
		fmt.Fprintf(&b, "## Mode: %s\n\n", r.Mode)
		fmt.Fprintf(&b, "- Steps: %d\n", r.Steps)
		if !r.StartedAt.IsZero() {
			fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.UTC().Format(time.RFC3339))
		}
		if !r.StartedAt.IsZero() && !r.EndedAt.IsZero() {
			fmt.Fprintf(&b, "- Duration: %s\n", r.EndedAt.Sub(r.StartedAt))
		}
		b.WriteString("\n| Stack | Initial | Final |\n|---:|---|---|\n")
		for i := 0; i < max(len(r.Initial), len(r.Final)); i++ {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, cell(r.Initial, i), cell(r.Final, i))
		}
		fmt.Fprintf(&b, "\nThe top of the stacks is **%s**\n\n", r.Tops)
	}
	return b.String()
}

// Write renders md for a terminal when w is one, otherwise writes it as is.
func Write(w io.Writer, md string) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err == nil {
			out, rerr := r.Render(md)
			if rerr == nil {
				_, err = io.WriteString(w, out)
				return err
			}
		}
	}
	_, err := io.WriteString(w, md)
	return err
}

func titleOf(r domain.RunResult) string {
	if strings.TrimSpace(r.PuzzleName) != "" {
		return r.PuzzleName
	}
	if r.PuzzlePath != "" {
		return r.PuzzlePath
	}
	return "puzzle"
}

func cell(stacks []string, i int) string {
	if i >= len(stacks) || stacks[i] == "" {
		return "-"
	}
	return "`" + stacks[i] + "`"
}
