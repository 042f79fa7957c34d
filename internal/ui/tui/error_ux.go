package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into one short line for the status area. The
// full error goes to the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.TrimSpace(oe.Path) != "" {
				return "Puzzle not found: " + filepath.Base(oe.Path)
			}
			return "Not found"

		case domain.KindParse:
			base := "puzzle"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid " + what(err) + " at " + base + " line " + line
			}
			return "Invalid " + what(err) + " in " + base

		case domain.KindCrane:
			return craneMessage(err)

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	var ce *domain.CraneError
	if errors.As(err, &ce) {
		return craneMessage(err)
	}
	return "Unexpected error (see logs)"
}

func craneMessage(err error) string {
	var ce *domain.CraneError
	if !errors.As(err, &ce) {
		return "Crane failure (see logs)"
	}

	var b strings.Builder
	switch {
	case errors.Is(err, domain.ErrInvalidMove):
		b.WriteString("Not enough crates")
	case errors.Is(err, domain.ErrInvalidStack):
		b.WriteString("No such stack")
	case errors.Is(err, domain.ErrEmptyStack):
		return "Stack " + strconv.Itoa(ce.Stack+1) + " is empty at the end"
	default:
		b.WriteString("Crane failure")
	}
	if ce.Step >= 0 {
		b.WriteString(" at step " + strconv.Itoa(ce.Step+1))
	}
	if ce.Instruction != nil {
		b.WriteString(": " + ce.Instruction.String())
	}
	return b.String()
}

func what(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInstruction):
		return "instruction"
	case errors.Is(err, domain.ErrInvalidStackLine):
		return "stack line"
	case errors.Is(err, domain.ErrNoSeparator):
		return "layout (no blank line between stacks and moves)"
	default:
		return "input"
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
