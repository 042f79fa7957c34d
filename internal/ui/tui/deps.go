package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/usecase"
)

// Tracer produces every state of a puzzle under one mode.
type Tracer interface {
	Execute(ctx context.Context, path string, stacks int, mode domain.MoveMode) (usecase.Trace, error)
}

type Deps struct {
	Tracer Tracer

	PuzzlePath string
	Stacks     int
	Mode       domain.MoveMode

	// Interval is the autoplay delay between steps.
	Interval time.Duration

	Logger *slog.Logger
	Debug  bool
}
