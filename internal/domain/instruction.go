package domain

import "fmt"

// Instruction moves Count crates from Source to Destination.
// Indices are 0-based; the text format is 1-based.
type Instruction struct {
	Count       int
	Source      int
	Destination int
}

// String renders the instruction in its 1-based text form.
func (i Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", i.Count, i.Source+1, i.Destination+1)
}

// InstructionList is applied strictly in order.
type InstructionList []Instruction

// Puzzle is a parsed input file: the starting stacks and the moves to apply.
type Puzzle struct {
	Name         string
	Path         string
	Stacks       StackSet
	Instructions InstructionList
}

// PuzzleRef is a lightweight reference to a puzzle file on disk.
type PuzzleRef struct {
	Name string
	Path string
}
