// Package reflection finds the mirror line of ash-and-rock patterns.
//
// A horizontal line between rows i-1 and i reflects the pattern when every
// row pair (i-1-k, i+k) that fits on both sides is identical. Vertical lines
// are found the same way on the transposed pattern. With smudges > 0 the
// line must be off by exactly that many cells, which is how a single
// smudge on the mirror is repaired.
package reflection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrNoReflection is returned when a pattern has no qualifying mirror line.
var ErrNoReflection = errors.New("reflection: no mirror line")

// DecodeCell maps ash ('.') and rock ('#') to false and true.
var DecodeCell = grid.Table(map[rune]bool{'.': false, '#': true})

// Line returns the number of rows above the first horizontal mirror line
// whose mismatch count equals smudges, or 0 and false.
func Line[T comparable](g *grid.Grid[T], smudges int) (int, bool) {
	rows := g.Rows()
	for i := 1; i < len(rows); i++ {
		if mismatches(rows, i, smudges) == smudges {
			return i, true
		}
	}

	return 0, false
}

// mismatches counts differing cells across the line above row i, stopping
// early once more than limit are found.
func mismatches[T comparable](rows [][]T, i, limit int) int {
	n := 0
	for a, b := i-1, i; a >= 0 && b < len(rows); a, b = a-1, b+1 {
		for x := range rows[a] {
			if rows[a][x] != rows[b][x] {
				n++
				if n > limit {
					return n
				}
			}
		}
	}

	return n
}

// Summarize returns 100 × rows-above for a horizontal line, else the
// columns-left of a vertical line.
func Summarize[T comparable](g *grid.Grid[T], smudges int) (int, error) {
	if rows, ok := Line(g, smudges); ok {
		return 100 * rows, nil
	}
	if cols, ok := Line(g.Transpose(), smudges); ok {
		return cols, nil
	}

	return 0, ErrNoReflection
}

// SummarizeAll parses blank-line separated patterns and sums Summarize.
func SummarizeAll(text string, smudges int) (int, error) {
	text = strings.ReplaceAll(text, "\r", "")
	total := 0
	for i, block := range strings.Split(strings.TrimSpace(text), "\n\n") {
		g, err := grid.Parse(block, DecodeCell)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		v, err := Summarize(g, smudges)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		total += v
	}

	return total, nil
}
