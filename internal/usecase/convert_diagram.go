package usecase

import (
	"context"
	"strings"

	"github.com/aalvaropc/dockyard/internal/ports"
)

type ConvertDiagram struct {
	diagrams ports.DiagramConverter
}

func NewConvertDiagram(dc ports.DiagramConverter) *ConvertDiagram {
	return &ConvertDiagram{diagrams: dc}
}

// Execute converts the drawing at path into the per-line stack format. With
// withInstructions set, the moves are appended after a blank line so the
// output can be run directly.
func (uc *ConvertDiagram) Execute(ctx context.Context, path string, withInstructions bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := uc.diagrams.ReadDiagram(path)
	if err != nil {
		return "", err
	}

	out := uc.diagrams.FormatStacks(p.Stacks)
	if !withInstructions || len(p.Instructions) == 0 {
		return out, nil
	}

	var b strings.Builder
	b.WriteString(out)
	b.WriteByte('\n')
	for _, ins := range p.Instructions {
		b.WriteString(ins.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}
