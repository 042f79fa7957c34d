package usecase

import (
	"context"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/ports"
)

// Trace is every state a puzzle passes through under one mode. When the
// simulation fails, States stops at the last good state and Err is set.
type Trace struct {
	Puzzle domain.Puzzle
	Mode   domain.MoveMode
	States []domain.StackSet
	Err    error
}

type TracePuzzle struct {
	puzzles ports.PuzzleLoader
}

func NewTracePuzzle(pl ports.PuzzleLoader) *TracePuzzle {
	return &TracePuzzle{puzzles: pl}
}

// Execute returns an error only when the puzzle cannot be loaded; crane
// failures are reported through Trace.Err so callers can still show the
// states reached before them.
func (uc *TracePuzzle) Execute(ctx context.Context, path string, stacks int, mode domain.MoveMode) (Trace, error) {
	if err := ctx.Err(); err != nil {
		return Trace{}, err
	}

	p, err := uc.puzzles.LoadPuzzle(path, stacks)
	if err != nil {
		return Trace{}, err
	}

	states, err := domain.NewSimulator(mode).Trace(p.Stacks, p.Instructions)
	tr := Trace{Puzzle: p, Mode: mode, States: states}
	if err != nil {
		tr.Err = &domain.OpError{Op: "usecase.trace", Kind: domain.KindCrane, Path: path, Err: err}
	}
	return tr, nil
}
