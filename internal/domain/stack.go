package domain

import (
	"fmt"
	"slices"
	"strings"
)

// MaxStacks bounds the number of stacks in a StackSet. Diagram headers use a
// single digit per stack, so nine is the largest layout the tools accept.
const MaxStacks = 9

// Stack is an ordered pile of crates. The top is the last element.
type Stack struct {
	crates []rune
}

// NewStack builds a stack from crates listed bottom to top.
func NewStack(crates ...rune) Stack {
	return Stack{crates: slices.Clone(crates)}
}

func (s Stack) Len() int { return len(s.crates) }

// Top returns the topmost crate, if any.
func (s Stack) Top() (rune, bool) {
	if len(s.crates) == 0 {
		return 0, false
	}
	return s.crates[len(s.crates)-1], true
}

// Crates returns a copy of the crates, bottom first.
func (s Stack) Crates() []rune {
	return slices.Clone(s.crates)
}

// String renders the crates bottom to top with no separators.
func (s Stack) String() string {
	return string(s.crates)
}

func (s Stack) clone() Stack {
	return Stack{crates: slices.Clone(s.crates)}
}

// StackSet is a fixed-size collection of stacks addressed by 0-based index.
// The zero value has no stacks; use NewStackSet.
type StackSet struct {
	stacks []Stack
}

// NewStackSet returns n empty stacks.
func NewStackSet(n int) (StackSet, error) {
	if n < 1 || n > MaxStacks {
		return StackSet{}, fmt.Errorf("stack count %d out of range 1..%d: %w", n, MaxStacks, ErrInvalidConfig)
	}
	return StackSet{stacks: make([]Stack, n)}, nil
}

// StackSetOf builds a StackSet from the given stacks. It is mostly useful in
// tests and for adapters that already hold fully built stacks.
func StackSetOf(stacks ...Stack) (StackSet, error) {
	set, err := NewStackSet(len(stacks))
	if err != nil {
		return StackSet{}, err
	}
	for i, s := range stacks {
		set.stacks[i] = s.clone()
	}
	return set, nil
}

func (ss StackSet) Len() int { return len(ss.stacks) }

// Stack returns the stack at index i. The second result is false when i is
// out of range.
func (ss StackSet) Stack(i int) (Stack, bool) {
	if !ss.valid(i) {
		return Stack{}, false
	}
	return ss.stacks[i].clone(), true
}

// Push places crates on top of stack i, in order. Used by parsers while the
// set is still under construction.
func (ss StackSet) Push(i int, crates ...rune) error {
	if !ss.valid(i) {
		return fmt.Errorf("stack %d: %w", i+1, ErrInvalidStack)
	}
	ss.stacks[i].crates = append(ss.stacks[i].crates, crates...)
	return nil
}

// Clone returns a deep copy that shares no backing arrays with ss.
func (ss StackSet) Clone() StackSet {
	out := StackSet{stacks: make([]Stack, len(ss.stacks))}
	for i, s := range ss.stacks {
		out.stacks[i] = s.clone()
	}
	return out
}

// Sizes returns the number of crates on each stack.
func (ss StackSet) Sizes() []int {
	out := make([]int, len(ss.stacks))
	for i, s := range ss.stacks {
		out[i] = s.Len()
	}
	return out
}

// Strings returns every stack rendered bottom to top.
func (ss StackSet) Strings() []string {
	out := make([]string, len(ss.stacks))
	for i, s := range ss.stacks {
		out[i] = s.String()
	}
	return out
}

// Tops returns the top crate of every stack in index order. Any empty stack
// makes the whole summary fail.
func (ss StackSet) Tops() (string, error) {
	var b strings.Builder
	b.Grow(len(ss.stacks))

	for i, s := range ss.stacks {
		top, ok := s.Top()
		if !ok {
			return "", &CraneError{Err: ErrEmptyStack, Step: -1, Stack: i}
		}
		b.WriteRune(top)
	}
	return b.String(), nil
}

// Equal reports whether both sets hold the same crates in the same order.
func (ss StackSet) Equal(other StackSet) bool {
	return slices.Equal(ss.Strings(), other.Strings())
}

func (ss StackSet) valid(i int) bool {
	return i >= 0 && i < len(ss.stacks)
}
