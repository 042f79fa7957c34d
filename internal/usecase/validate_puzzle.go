package usecase

import (
	"context"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/ports"
)

type ValidatePuzzle struct {
	puzzles ports.PuzzleLoader
}

func NewValidatePuzzle(pl ports.PuzzleLoader) *ValidatePuzzle {
	return &ValidatePuzzle{puzzles: pl}
}

// Execute parses the puzzle and dry-runs it under each mode, including the
// tops summary. Nothing is exported.
func (uc *ValidatePuzzle) Execute(ctx context.Context, path string, stacks int, modes ...domain.MoveMode) error {
	p, err := uc.puzzles.LoadPuzzle(path, stacks)
	if err != nil {
		return err
	}

	for _, mode := range modes {
		if err := ctx.Err(); err != nil {
			return err
		}

		final, err := domain.NewSimulator(mode).ApplyAll(p.Stacks, p.Instructions)
		if err == nil {
			_, err = final.Tops()
		}
		if err != nil {
			return &domain.OpError{
				Op:   "usecase.validate." + string(mode),
				Kind: domain.KindCrane,
				Path: path,
				Err:  err,
			}
		}
	}
	return nil
}
