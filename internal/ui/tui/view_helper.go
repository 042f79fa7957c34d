package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/dockyard/internal/domain"
)

const slotWidth = 4

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// drawStacks renders the set the way crate drawings are written: one row per
// level, top row first, and a row of stack numbers at the bottom.
func drawStacks(set domain.StackSet) string {
	height := 0
	for _, n := range set.Sizes() {
		height = max(height, n)
	}

	var b strings.Builder
	for level := height - 1; level >= 0; level-- {
		var row strings.Builder
		for i := 0; i < set.Len(); i++ {
			if i > 0 {
				row.WriteByte(' ')
			}
			st, _ := set.Stack(i)
			crates := st.Crates()
			if level < len(crates) {
				row.WriteByte('[')
				row.WriteRune(crates[level])
				row.WriteByte(']')
			} else {
				row.WriteString("   ")
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}

	labels := make([]string, set.Len())
	for i := range labels {
		labels[i] = " " + strconv.Itoa(i+1) + " "
	}
	b.WriteString(strings.Join(labels, " "))
	return b.String()
}

// headerLabels splits a stack number row back into its three-column labels.
func headerLabels(row string) []string {
	var out []string
	for start := 0; start < len(row); start += slotWidth {
		end := min(start+slotWidth-1, len(row))
		out = append(out, row[start:end])
	}
	return out
}
