package textpuzzle

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/ports"
)

// Loader reads puzzle files: a stack block, a blank line, an instruction block.
type Loader struct {
	puzzlesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{puzzlesDir: "puzzles"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithPuzzlesDir(dir string) Option {
	return func(l *Loader) { l.puzzlesDir = dir }
}

var _ ports.PuzzleLoader = (*Loader)(nil)

// LoadPuzzle reads and parses the puzzle at path into a set of n stacks.
func (l *Loader) LoadPuzzle(path string, stacks int) (domain.Puzzle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Puzzle{}, &domain.OpError{
			Op:   "textpuzzle.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	p, err := Parse(string(b), stacks)
	if err != nil {
		return domain.Puzzle{}, &domain.OpError{
			Op:   "textpuzzle.parse",
			Kind: kindOf(err),
			Path: path,
			Err:  err,
		}
	}

	p.Name = puzzleName(path)
	p.Path = path
	return p, nil
}

// ListPuzzles returns the puzzle files found in the puzzles directory.
func (l *Loader) ListPuzzles(root string) ([]domain.PuzzleRef, error) {
	dir := filepath.Join(root, l.puzzlesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "textpuzzle.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.PuzzleRef
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !hasPuzzleExt(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		refs = append(refs, domain.PuzzleRef{Name: puzzleName(p), Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Parse splits text into its two blocks and parses both. Stack count n is
// fixed by the caller.
func Parse(text string, n int) (domain.Puzzle, error) {
	stackBlock, insBlock, err := SplitBlocks(text)
	if err != nil {
		return domain.Puzzle{}, err
	}

	set, err := ParseStacks(stackBlock, n)
	if err != nil {
		return domain.Puzzle{}, err
	}

	list, err := ParseInstructions(insBlock)
	if err != nil {
		return domain.Puzzle{}, err
	}

	return domain.Puzzle{Stacks: set, Instructions: list}, nil
}

// A bad stack count is a configuration problem; everything else is malformed
// input.
func kindOf(err error) domain.ErrorKind {
	if errors.Is(err, domain.ErrInvalidConfig) {
		return domain.KindInvalidConfig
	}
	return domain.KindParse
}

func puzzleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func hasPuzzleExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".in", "":
		return true
	}
	return false
}
