package textpuzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
)

// SplitBlocks splits an input file into the stack block and the instruction
// block at the first blank line. CRLF line endings are normalised first.
func SplitBlocks(text string) (stacks string, instructions string, err error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	stacks, instructions, ok := strings.Cut(text, "\n\n")
	if !ok {
		return "", "", domain.ErrNoSeparator
	}
	return stacks, instructions, nil
}

// ParseStacks parses the stack block into a set of n stacks.
//
// Each line is "<stack number> <crates...>". Crate tokens are concatenated in
// written order, so the first crate on a line is the bottom of its stack.
// Repeating a stack number appends to that stack. Blank lines are ignored.
func ParseStacks(text string, n int) (domain.StackSet, error) {
	set, err := domain.NewStackSet(n)
	if err != nil {
		return domain.StackSet{}, err
	}

	for i, line := range lines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		num, err := strconv.Atoi(fields[0])
		if err != nil || num < 1 || num > n {
			return domain.StackSet{}, &domain.ParseError{Line: i + 1, Text: line, Err: domain.ErrInvalidStackLine}
		}

		crates := []rune(strings.Join(fields[1:], ""))
		if err := set.Push(num-1, crates...); err != nil {
			return domain.StackSet{}, &domain.ParseError{Line: i + 1, Text: line, Err: domain.ErrInvalidStackLine}
		}
	}

	return set, nil
}

// ParseInstruction parses one "move <count> from <source> to <destination>"
// line. Only the numeric tokens matter; there must be exactly three. Errors
// wrap domain.ErrInvalidInstruction and carry no line number; ParseInstructions
// adds it.
func ParseInstruction(line string) (domain.Instruction, error) {
	var nums []int
	for _, f := range strings.Fields(line) {
		v, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			continue
		}
		nums = append(nums, int(v))
	}

	if len(nums) != 3 {
		return domain.Instruction{}, fmt.Errorf("%w: want 3 numbers, got %d", domain.ErrInvalidInstruction, len(nums))
	}
	if nums[1] == 0 || nums[2] == 0 {
		return domain.Instruction{}, fmt.Errorf("%w: stack numbers start at 1", domain.ErrInvalidInstruction)
	}

	return domain.Instruction{
		Count:       nums[0],
		Source:      nums[1] - 1,
		Destination: nums[2] - 1,
	}, nil
}

// ParseInstructions parses the instruction block. Either every line parses
// or nothing is returned.
func ParseInstructions(text string) (domain.InstructionList, error) {
	var out domain.InstructionList

	for i, line := range lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, &domain.ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, ins)
	}

	return out, nil
}

func lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
