package domain

import (
	"errors"
	"slices"
	"testing"
)

func abcStacks(t *testing.T) StackSet {
	t.Helper()
	set, err := StackSetOf(
		NewStack('A', 'B', 'C'),
		NewStack('D', 'E', 'F'),
		NewStack('G', 'H', 'I'),
		NewStack(), NewStack(), NewStack(), NewStack(), NewStack(), NewStack(),
	)
	if err != nil {
		t.Fatalf("StackSetOf: %v", err)
	}
	return set
}

func TestApply_SingleReversesMovedCrates(t *testing.T) {
	sim := NewSimulator(ModeSingle)
	got, err := sim.Apply(abcStacks(t), Instruction{Count: 2, Source: 0, Destination: 1})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	s := got.Strings()
	if s[0] != "A" {
		t.Errorf("source: expected A, got %q", s[0])
	}
	if s[1] != "DEFCB" {
		t.Errorf("destination: expected DEFCB, got %q", s[1])
	}
	if s[2] != "GHI" {
		t.Errorf("untouched stack changed: %q", s[2])
	}
}

func TestApply_BatchPreservesOrder(t *testing.T) {
	sim := NewSimulator(ModeBatch)
	got, err := sim.Apply(abcStacks(t), Instruction{Count: 2, Source: 0, Destination: 1})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	s := got.Strings()
	if s[0] != "A" || s[1] != "DEFBC" {
		t.Fatalf("expected [A DEFBC], got [%s %s]", s[0], s[1])
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := abcStacks(t)
	before := in.Strings()

	for _, mode := range []MoveMode{ModeSingle, ModeBatch} {
		if _, err := NewSimulator(mode).Apply(in, Instruction{Count: 3, Source: 0, Destination: 2}); err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if !slices.Equal(in.Strings(), before) {
			t.Fatalf("%s: input mutated: %v", mode, in.Strings())
		}
	}
}

func TestApply_Errors(t *testing.T) {
	cases := []struct {
		name string
		ins  Instruction
		want error
	}{
		{"source out of range", Instruction{Count: 1, Source: 9, Destination: 0}, ErrInvalidStack},
		{"destination out of range", Instruction{Count: 1, Source: 0, Destination: 9}, ErrInvalidStack},
		{"negative index", Instruction{Count: 1, Source: -1, Destination: 0}, ErrInvalidStack},
		{"too many crates", Instruction{Count: 4, Source: 0, Destination: 1}, ErrInvalidMove},
		{"empty source", Instruction{Count: 1, Source: 3, Destination: 1}, ErrInvalidMove},
		{"same stack out of range", Instruction{Count: 0, Source: 12, Destination: 12}, ErrInvalidStack},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := abcStacks(t)
			before := in.Strings()

			got, err := NewSimulator(ModeSingle).Apply(in, c.ins)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if !slices.Equal(in.Strings(), before) || !got.Equal(in) {
				t.Fatalf("state changed on failure")
			}
		})
	}
}

func TestApply_InvalidMoveCarriesContext(t *testing.T) {
	in := abcStacks(t)
	ins := Instruction{Count: 5, Source: 1, Destination: 0}

	_, err := NewSimulator(ModeBatch).Apply(in, ins)

	var ce *CraneError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CraneError, got %T", err)
	}
	if ce.Instruction == nil || *ce.Instruction != ins {
		t.Fatalf("expected instruction in error, got %+v", ce.Instruction)
	}
	if ce.Snapshot == nil || !ce.Snapshot.Equal(in) {
		t.Fatalf("expected snapshot of failing state")
	}
	if ce.Step != -1 {
		t.Fatalf("expected step -1 for a single Apply, got %d", ce.Step)
	}
}

func TestApply_SameStackIsNoOp(t *testing.T) {
	for _, mode := range []MoveMode{ModeSingle, ModeBatch} {
		in := abcStacks(t)
		got, err := NewSimulator(mode).Apply(in, Instruction{Count: 2, Source: 2, Destination: 2})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", mode, err)
		}
		if !got.Equal(in) {
			t.Fatalf("%s: same-stack move changed the set: %v", mode, got.Strings())
		}
		st, _ := got.Stack(2)
		if st.String() != "GHI" {
			t.Fatalf("%s: expected GHI, got %q", mode, st.String())
		}
	}
}

func TestApply_SameStackStillChecksCount(t *testing.T) {
	_, err := NewSimulator(ModeSingle).Apply(abcStacks(t), Instruction{Count: 4, Source: 0, Destination: 0})
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
}

func TestApplyAll_StopsAtFirstFailure(t *testing.T) {
	list := InstructionList{
		{Count: 1, Source: 0, Destination: 3},
		{Count: 9, Source: 1, Destination: 3},
		{Count: 1, Source: 2, Destination: 3},
	}

	got, err := NewSimulator(ModeSingle).ApplyAll(abcStacks(t), list)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	var ce *CraneError
	if !errors.As(err, &ce) || ce.Step != 1 {
		t.Fatalf("expected failure at step index 1, got %v", err)
	}

	s := got.Strings()
	if s[0] != "AB" || s[3] != "C" || s[2] != "GHI" {
		t.Fatalf("expected only first instruction applied, got %v", s)
	}
}

func TestTrace_RecordsEveryState(t *testing.T) {
	list := InstructionList{
		{Count: 1, Source: 0, Destination: 1},
		{Count: 2, Source: 1, Destination: 2},
	}

	var hooked []int
	sim := NewSimulator(ModeBatch, WithStepHook(func(s Step) { hooked = append(hooked, s.Index) }))

	states, err := sim.Trace(abcStacks(t), list)
	if err != nil {
		t.Fatalf("Trace error: %v", err)
	}
	if len(states) != 3 {
		t.Fatalf("expected 3 states, got %d", len(states))
	}
	if states[0].Strings()[0] != "ABC" {
		t.Fatalf("expected initial state first, got %v", states[0].Strings())
	}
	if got := states[2].Strings()[2]; got != "GHIFC" {
		t.Fatalf("expected GHIFC, got %q", got)
	}
	if !slices.Equal(hooked, []int{0, 1}) {
		t.Fatalf("expected hook per step, got %v", hooked)
	}
}

func TestParseMoveMode(t *testing.T) {
	cases := []struct {
		in      string
		want    MoveMode
		wantErr bool
	}{
		{"single", ModeSingle, false},
		{" Batch ", ModeBatch, false},
		{"9000", ModeSingle, false},
		{"9001", ModeBatch, false},
		{"", "", true},
		{"fast", "", true},
	}
	for _, c := range cases {
		got, err := ParseMoveMode(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseMoveMode(%q) err=%v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMoveMode(%q) = %q, want %q", c.in, got, c.want)
		}
		if err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	}
}
