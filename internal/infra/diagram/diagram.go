// Package diagram converts the drawn crate layout into the one-line-per-stack
// text form read by textpuzzle.
//
// A drawing looks like
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// Each stack occupies a four-column slot and the crate label sits in the
// second column of its slot. The last line numbers the stacks.
package diagram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
)

const slotWidth = 4

// Parse reads a drawing. Anything after the first blank line (usually the
// instruction block) is ignored.
func Parse(text string) (domain.StackSet, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text, _, _ = strings.Cut(text, "\n\n")

	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(rows) == 0 || strings.TrimSpace(rows[len(rows)-1]) == "" {
		return domain.StackSet{}, parseErr(fmt.Errorf("missing stack number row"))
	}

	n, err := headerCount(rows[len(rows)-1])
	if err != nil {
		return domain.StackSet{}, parseErr(err)
	}

	set, err := domain.NewStackSet(n)
	if err != nil {
		return domain.StackSet{}, parseErr(err)
	}

	// Bottom row first so the lowest crates are pushed first.
	for r := len(rows) - 2; r >= 0; r-- {
		line := []rune(rows[r])
		for pos := 0; pos < n; pos++ {
			col := 1 + slotWidth*pos
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			if err := set.Push(pos, line[col]); err != nil {
				return domain.StackSet{}, parseErr(err)
			}
		}
	}

	return set, nil
}

// Format renders a StackSet as "<n> <crate> <crate>..." lines, bottom first.
func Format(set domain.StackSet) string {
	var b strings.Builder
	for i := 0; i < set.Len(); i++ {
		st, _ := set.Stack(i)
		b.WriteString(strconv.Itoa(i + 1))
		for _, c := range st.Crates() {
			b.WriteByte(' ')
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// headerCount checks that the number row reads 1..N and returns N.
func headerCount(line string) (int, error) {
	fields := strings.Fields(line)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v != i+1 {
			return 0, fmt.Errorf("stack number row: expected %d, got %q", i+1, f)
		}
	}
	return len(fields), nil
}

func parseErr(err error) error {
	return &domain.OpError{
		Op:   "diagram.parse",
		Kind: domain.KindParse,
		Err:  err,
	}
}
