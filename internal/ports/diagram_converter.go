package ports

import "github.com/aalvaropc/dockyard/internal/domain"

// DiagramConverter reads drawn crate layouts and renders stacks in the
// one-line-per-stack text form.
type DiagramConverter interface {
	ReadDiagram(path string) (domain.Puzzle, error)
	FormatStacks(set domain.StackSet) string
}
