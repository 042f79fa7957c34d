package diagram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/textpuzzle"
	"github.com/aalvaropc/dockyard/internal/ports"
)

// Converter reads drawing files from disk.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

var _ ports.DiagramConverter = (*Converter)(nil)

// ReadDiagram parses the drawing at path. Instructions following the drawing
// are parsed too; a file with only a drawing yields no instructions.
func (c *Converter) ReadDiagram(path string) (domain.Puzzle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Puzzle{}, &domain.OpError{
			Op:   "diagram.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	text := string(b)
	set, err := Parse(text)
	if err != nil {
		return domain.Puzzle{}, withPath(err, path)
	}

	var list domain.InstructionList
	if _, rest, err := textpuzzle.SplitBlocks(text); err == nil && strings.TrimSpace(rest) != "" {
		list, err = textpuzzle.ParseInstructions(rest)
		if err != nil {
			return domain.Puzzle{}, &domain.OpError{
				Op:   "diagram.instructions",
				Kind: domain.KindParse,
				Path: path,
				Err:  err,
			}
		}
	}

	return domain.Puzzle{
		Name:         strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:         path,
		Stacks:       set,
		Instructions: list,
	}, nil
}

func (c *Converter) FormatStacks(set domain.StackSet) string {
	return Format(set)
}

func withPath(err error, path string) error {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		cp := *oe
		cp.Path = path
		return &cp
	}
	return err
}
