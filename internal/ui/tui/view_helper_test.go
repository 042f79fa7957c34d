package tui

import (
	"testing"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/diagram"
)

func TestDrawStacks_MatchesDiagramLayout(t *testing.T) {
	set, err := domain.StackSetOf(
		domain.NewStack('Z', 'N'),
		domain.NewStack('M', 'C', 'D'),
		domain.NewStack('P'),
	)
	if err != nil {
		t.Fatalf("StackSetOf: %v", err)
	}

	got := drawStacks(set)
	want := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3 "
	if got != want {
		t.Fatalf("unexpected drawing:\n%q\nwant:\n%q", got, want)
	}

	back, err := diagram.Parse(got)
	if err != nil {
		t.Fatalf("diagram.Parse: %v", err)
	}
	if !back.Equal(set) {
		t.Fatalf("round trip mismatch: %v", back.Strings())
	}
}

func TestDrawStacks_EmptyStacks(t *testing.T) {
	set, _ := domain.NewStackSet(2)
	if got := drawStacks(set); got != " 1   2 " {
		t.Fatalf("unexpected drawing %q", got)
	}
}

func TestHeaderLabels(t *testing.T) {
	got := headerLabels(" 1   2   3 ")
	if len(got) != 3 || got[0] != " 1 " || got[2] != " 3 " {
		t.Fatalf("unexpected labels %q", got)
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("abcdef", 3); got != "abc…" {
		t.Fatalf("unexpected %q", got)
	}
	if got := clampString("ab", 3); got != "ab" {
		t.Fatalf("unexpected %q", got)
	}
	if got := clampString("ab", 0); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}
