package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/ports"
)

// RunRequest names the puzzle file and how to simulate it.
type RunRequest struct {
	PuzzlePath string
	Mode       domain.MoveMode
	Stacks     int
}

type RunPuzzle struct {
	puzzles ports.PuzzleLoader
	store   ports.ArtifactStore
	log     *slog.Logger
	now     func() time.Time
}

type RunOption func(*RunPuzzle)

// WithLogger sets the logger passed down to the simulator.
func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunPuzzle) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock overrides time.Now (useful for tests).
func WithClock(now func() time.Time) RunOption {
	return func(uc *RunPuzzle) { uc.now = now }
}

// NewRunPuzzle wires the use case. store may be nil, in which case runs are
// not exported.
func NewRunPuzzle(pl ports.PuzzleLoader, store ports.ArtifactStore, opts ...RunOption) *RunPuzzle {
	uc := &RunPuzzle{
		puzzles: pl,
		store:   store,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the puzzle, applies every instruction and computes the tops
// summary. On a crane failure the returned result holds the state reached
// before the failing instruction. The run id is empty when no store is set.
func (uc *RunPuzzle) Execute(ctx context.Context, req RunRequest) (domain.RunResult, string, error) {
	p, err := uc.puzzles.LoadPuzzle(req.PuzzlePath, req.Stacks)
	if err != nil {
		return domain.RunResult{}, "", err
	}

	run, err := uc.simulate(ctx, p, req.Mode)
	if err != nil {
		return run, "", err
	}

	id, err := uc.save(run)
	return run, id, err
}

// ExecuteModes parses the puzzle once and simulates it under each mode in
// order. It stops at the first failing mode.
func (uc *RunPuzzle) ExecuteModes(ctx context.Context, path string, stacks int, modes ...domain.MoveMode) ([]domain.RunResult, error) {
	p, err := uc.puzzles.LoadPuzzle(path, stacks)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RunResult, 0, len(modes))
	for _, mode := range modes {
		run, err := uc.simulate(ctx, p, mode)
		if err != nil {
			return out, err
		}
		if _, err := uc.save(run); err != nil {
			return out, err
		}
		out = append(out, run)
	}
	return out, nil
}

func (uc *RunPuzzle) simulate(ctx context.Context, p domain.Puzzle, mode domain.MoveMode) (domain.RunResult, error) {
	run := domain.RunResult{
		PuzzleName: p.Name,
		PuzzlePath: p.Path,
		Mode:       mode,
		StartedAt:  uc.now(),
		Initial:    p.Stacks.Strings(),
	}

	if err := ctx.Err(); err != nil {
		run.EndedAt = uc.now()
		return run, err
	}
	if !mode.Valid() {
		return run, &domain.OpError{
			Op:   "usecase.simulate",
			Kind: domain.KindInvalidConfig,
			Path: p.Path,
			Err:  fmt.Errorf("unsupported mode %q: %w", mode, domain.ErrInvalidConfig),
		}
	}

	log := uc.log.With("puzzle", p.Name, "mode", string(mode))
	log.Info("run.start", "instructions", len(p.Instructions), "stacks", p.Stacks.Len())

	steps := 0
	sim := domain.NewSimulator(mode,
		domain.WithLogger(log),
		domain.WithStepHook(func(domain.Step) { steps++ }),
	)

	final, err := sim.ApplyAll(p.Stacks, p.Instructions)
	run.Steps = steps
	run.Final = final.Strings()
	run.EndedAt = uc.now()
	if err != nil {
		log.Error("run.failed", "err", err, "steps", steps)
		return run, craneErr(p.Path, err)
	}

	tops, err := final.Tops()
	if err != nil {
		log.Error("run.failed", "err", err, "steps", steps)
		return run, craneErr(p.Path, err)
	}
	run.Tops = tops

	log.Info("run.done", "tops", tops, "steps", steps)
	return run, nil
}

func (uc *RunPuzzle) save(run domain.RunResult) (string, error) {
	if uc.store == nil {
		return "", nil
	}
	id, err := uc.store.SaveRun(run)
	if err != nil {
		uc.log.Error("run.save_failed", "err", err)
		return "", err
	}
	uc.log.Info("run.saved", "id", id)
	return id, nil
}

func craneErr(path string, err error) error {
	return &domain.OpError{
		Op:   "usecase.simulate",
		Kind: domain.KindCrane,
		Path: path,
		Err:  err,
	}
}
