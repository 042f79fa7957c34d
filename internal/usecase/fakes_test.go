package usecase

import (
	"testing"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/textpuzzle"
)

// --- fakes shared by the use case tests ---

const samplePuzzle = "1 Z N\n2 M C D\n3 P\n\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

// textLoader parses in-memory text with the real parser.
type textLoader struct {
	text  string
	loads int
}

func (l *textLoader) LoadPuzzle(path string, stacks int) (domain.Puzzle, error) {
	l.loads++
	p, err := textpuzzle.Parse(l.text, stacks)
	if err != nil {
		return domain.Puzzle{}, &domain.OpError{Op: "fake.load", Kind: domain.KindParse, Path: path, Err: err}
	}
	p.Name = "sample"
	p.Path = path
	return p, nil
}

func (l *textLoader) ListPuzzles(_ string) ([]domain.PuzzleRef, error) {
	return nil, nil
}

type errLoader struct{ err error }

func (e errLoader) LoadPuzzle(_ string, _ int) (domain.Puzzle, error) {
	return domain.Puzzle{}, e.err
}

func (e errLoader) ListPuzzles(_ string) ([]domain.PuzzleRef, error) {
	return nil, e.err
}

type fakeStore struct {
	saved []domain.RunResult
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunResult) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, run)
	return "run-123", nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

func mustNotFail(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
