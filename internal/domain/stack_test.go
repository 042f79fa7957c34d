package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestNewStackSet_Bounds(t *testing.T) {
	cases := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{MaxStacks, false},
		{MaxStacks + 1, true},
	}
	for _, c := range cases {
		set, err := NewStackSet(c.n)
		if (err != nil) != c.wantErr {
			t.Errorf("NewStackSet(%d) err=%v, wantErr=%v", c.n, err, c.wantErr)
			continue
		}
		if err == nil && set.Len() != c.n {
			t.Errorf("NewStackSet(%d) len=%d", c.n, set.Len())
		}
	}
}

func TestTops_ReturnsTopOfEveryStack(t *testing.T) {
	set, err := StackSetOf(NewStack('Z', 'N'), NewStack('M', 'C', 'D'), NewStack('P'))
	if err != nil {
		t.Fatal(err)
	}

	got, err := set.Tops()
	if err != nil {
		t.Fatalf("Tops error: %v", err)
	}
	if got != "NDP" {
		t.Fatalf("expected NDP, got %q", got)
	}
}

func TestTops_FailsOnAnyEmptyStack(t *testing.T) {
	set, err := StackSetOf(NewStack('Z'), NewStack(), NewStack('P'))
	if err != nil {
		t.Fatal(err)
	}

	got, err := set.Tops()
	if err == nil {
		t.Fatalf("expected error, got %q", got)
	}
	if got != "" {
		t.Fatalf("expected no partial output, got %q", got)
	}
	if !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("expected ErrEmptyStack, got %v", err)
	}
	var ce *CraneError
	if !errors.As(err, &ce) || ce.Stack != 1 {
		t.Fatalf("expected CraneError for stack index 1, got %v", err)
	}
}

func TestClone_SharesNoState(t *testing.T) {
	set, _ := StackSetOf(NewStack('A', 'B'), NewStack())
	cp := set.Clone()

	if err := cp.Push(0, 'C'); err != nil {
		t.Fatal(err)
	}
	if got := set.Strings(); !slices.Equal(got, []string{"AB", ""}) {
		t.Fatalf("original changed: %v", got)
	}
	if got := cp.Strings(); !slices.Equal(got, []string{"ABC", ""}) {
		t.Fatalf("clone not updated: %v", got)
	}
}

func TestStack_AccessorsReturnCopies(t *testing.T) {
	set, _ := StackSetOf(NewStack('A', 'B'))
	st, ok := set.Stack(0)
	if !ok {
		t.Fatal("expected stack 0")
	}
	crates := st.Crates()
	crates[0] = 'X'

	again, _ := set.Stack(0)
	if again.String() != "AB" {
		t.Fatalf("expected stack unchanged, got %q", again.String())
	}
	if _, ok := set.Stack(1); ok {
		t.Fatal("expected out-of-range lookup to fail")
	}
}

func TestPush_OutOfRange(t *testing.T) {
	set, _ := NewStackSet(2)
	if err := set.Push(2, 'A'); !errors.Is(err, ErrInvalidStack) {
		t.Fatalf("expected ErrInvalidStack, got %v", err)
	}
}
