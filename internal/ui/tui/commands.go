package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/dockyard/internal/domain"
)

const defaultInterval = 600 * time.Millisecond

func cmdLoadTrace(deps Deps, mode domain.MoveMode) tea.Cmd {
	return func() tea.Msg {
		if deps.Tracer == nil {
			return traceLoadedMsg{err: errors.New("Tracer is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		tr, err := deps.Tracer.Execute(ctx, deps.PuzzlePath, deps.Stacks, mode)
		return traceLoadedMsg{trace: tr, err: err}
	}
}

func cmdTick(id int, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = defaultInterval
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
