package ports

import "github.com/aalvaropc/dockyard/internal/domain"

// PuzzleLoader loads puzzles from a source (e.g., filesystem).
type PuzzleLoader interface {
	LoadPuzzle(path string, stacks int) (domain.Puzzle, error)
	ListPuzzles(root string) ([]domain.PuzzleRef, error)
}
