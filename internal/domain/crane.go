package domain

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// MoveMode selects how a group of crates lands on the destination stack.
type MoveMode string

const (
	// ModeSingle moves crates one at a time, reversing the moved group.
	ModeSingle MoveMode = "single"
	// ModeBatch moves the group at once, preserving its order.
	ModeBatch MoveMode = "batch"
)

// ParseMoveMode accepts "single" or "batch" (case-insensitive). The crane
// model numbers 9000 and 9001 are accepted as aliases.
func ParseMoveMode(s string) (MoveMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "9000":
		return ModeSingle, nil
	case "batch", "9001":
		return ModeBatch, nil
	default:
		return "", fmt.Errorf("unsupported mode %q (expected single|batch): %w", s, ErrInvalidConfig)
	}
}

// Valid reports whether m is one of the known modes.
func (m MoveMode) Valid() bool {
	return m == ModeSingle || m == ModeBatch
}

// Step describes one successfully applied instruction.
type Step struct {
	Index       int
	Instruction Instruction
	After       StackSet
}

// Simulator applies crane instructions to stack sets under one move mode.
type Simulator struct {
	mode   MoveMode
	log    *slog.Logger
	onStep func(Step)
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLogger sets the logger used for per-step debug events.
func WithLogger(l *slog.Logger) SimulatorOption {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStepHook registers a callback invoked after every applied instruction
// in ApplyAll and Trace.
func WithStepHook(fn func(Step)) SimulatorOption {
	return func(s *Simulator) { s.onStep = fn }
}

func NewSimulator(mode MoveMode, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		mode: mode,
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Mode() MoveMode { return s.mode }

// Apply returns the state after moving ins.Count crates. The input set is
// never modified, including on failure.
func (s *Simulator) Apply(set StackSet, ins Instruction) (StackSet, error) {
	return s.apply(set, ins, -1)
}

// ApplyAll folds every instruction over set in order. On failure it returns
// the state reached by the instructions that succeeded, plus the error.
func (s *Simulator) ApplyAll(set StackSet, list InstructionList) (StackSet, error) {
	cur := set
	for i, ins := range list {
		next, err := s.apply(cur, ins, i)
		if err != nil {
			return cur, err
		}
		cur = next
		s.stepped(i, ins, cur)
	}
	return cur, nil
}

// Trace is like ApplyAll but keeps every intermediate state. states[0] is the
// input; states[i] is the state after the i-th instruction.
func (s *Simulator) Trace(set StackSet, list InstructionList) ([]StackSet, error) {
	states := make([]StackSet, 0, len(list)+1)
	states = append(states, set.Clone())

	cur := set
	for i, ins := range list {
		next, err := s.apply(cur, ins, i)
		if err != nil {
			return states, err
		}
		cur = next
		states = append(states, cur)
		s.stepped(i, ins, cur)
	}
	return states, nil
}

func (s *Simulator) apply(set StackSet, ins Instruction, step int) (StackSet, error) {
	if !set.valid(ins.Source) || !set.valid(ins.Destination) {
		return set, &CraneError{Err: ErrInvalidStack, Step: step, Instruction: &ins}
	}
	if ins.Count < 0 || set.stacks[ins.Source].Len() < ins.Count {
		snap := set.Clone()
		return set, &CraneError{Err: ErrInvalidMove, Step: step, Instruction: &ins, Snapshot: &snap}
	}

	// Lifting crates off a stack and setting them back down on it, one at a
	// time or all at once, leaves it as it was.
	if ins.Source == ins.Destination {
		return set.Clone(), nil
	}

	next := set.Clone()
	moved := take(&next.stacks[ins.Source], ins.Count)
	s.place(&next.stacks[ins.Destination], moved)
	return next, nil
}

func (s *Simulator) stepped(i int, ins Instruction, after StackSet) {
	s.log.Debug("crane.step",
		"step", i+1,
		"instruction", ins.String(),
		"mode", string(s.mode),
		"sizes", after.Sizes(),
	)
	if s.onStep != nil {
		s.onStep(Step{Index: i, Instruction: ins, After: after})
	}
}

// take removes the top n crates and returns them bottom first.
func take(st *Stack, n int) []rune {
	cut := len(st.crates) - n
	moved := slices.Clone(st.crates[cut:])
	st.crates = st.crates[:cut]
	return moved
}

// place is the only step that depends on the move mode.
func (s *Simulator) place(st *Stack, moved []rune) {
	if s.mode == ModeSingle {
		slices.Reverse(moved)
	}
	st.crates = append(st.crates, moved...)
}
