// Package galaxy measures distances between galaxies in an image of an
// expanding universe.
//
// Every row and every column with no galaxy in it is empty space, and empty
// space grows: with expansion factor f each empty line becomes f lines. A
// galaxy is pushed right by (f-1) for each empty column to its left and down
// by (f-1) for each empty row above it. Distances are Manhattan distances
// between the pushed coordinates.
//
// Complexity: O(W×H) to expand, O(n²) to sum n galaxies pairwise.
package galaxy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

var (
	// ErrNilGrid indicates a nil grid pointer.
	ErrNilGrid = errors.New("galaxy: grid is nil")
	// ErrBadFactor indicates an expansion factor below 1.
	ErrBadFactor = errors.New("galaxy: expansion factor must be at least 1")
)

// DecodeCell maps empty space ('.') and a galaxy ('#') to false and true.
var DecodeCell = grid.Table(map[rune]bool{'.': false, '#': true})

// Expand returns the coordinate of every galaxy after expansion by factor,
// in row-major order of the original image. Factor 1 leaves the image as is.
func Expand(g *grid.Grid[bool], factor int) ([]geom.Coordinate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadFactor, factor)
	}
	dy := shifts(g.Height(), g.Row, factor)
	dx := shifts(g.Width(), g.Column, factor)

	var out []geom.Coordinate
	for c, galaxy := range g.All() {
		if galaxy {
			out = append(out, geom.C(c.X+dx[c.X], c.Y+dy[c.Y]))
		}
	}

	return out, nil
}

// shifts returns, for each of n lines, how far the empty lines before it
// push it.
func shifts(n int, line func(int) []bool, factor int) []int {
	out := make([]int, n)
	extra := 0
	for i := range n {
		out[i] = extra
		if !slices.Contains(line(i), true) {
			extra += factor - 1
		}
	}

	return out
}

// SumDistances adds up the Manhattan distance of every unordered pair.
func SumDistances(cs []geom.Coordinate) int {
	total := 0
	for i, a := range cs {
		for _, b := range cs[i+1:] {
			total += a.Manhattan(b)
		}
	}

	return total
}

// DistanceSum parses an image, expands it by factor and returns
// SumDistances of its galaxies.
func DistanceSum(text string, factor int) (int, error) {
	g, err := grid.Parse(text, DecodeCell)
	if err != nil {
		return 0, err
	}
	cs, err := Expand(g, factor)
	if err != nil {
		return 0, err
	}

	return SumDistances(cs), nil
}
