package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Parse builds a Grid from newline-separated text, one cell per rune.
// Carriage returns and trailing blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrUnknownCell joined with
// the decoder's own error and the offending position.
// Complexity: O(W×H).
func Parse[T any](text string, decode Decoder[T]) (*Grid[T], error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	rows := make([][]T, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			v, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d): %w", ErrUnknownCell, x, y, err)
			}
			row = append(row, v)
			x++
		}
		rows[y] = row
	}

	return build(rows)
}

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, len(rows))
	for y, row := range rows {
		cells[y] = append([]T(nil), row...)
	}

	return build(cells)
}

// build validates shape and takes ownership of cells.
func build[T any](cells [][]T) (*Grid[T], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return &Grid[T]{width: w, height: len(cells), cells: cells}, nil
}

// IsOutOfBounds reports whether c lies outside the grid.
func (g *Grid[T]) IsOutOfBounds(c geom.Coordinate) bool {
	return c.X < 0 || c.Y < 0 || c.X >= g.width || c.Y >= g.height
}

// InBounds is the negation of IsOutOfBounds.
func (g *Grid[T]) InBounds(c geom.Coordinate) bool {
	return !g.IsOutOfBounds(c)
}

// Get returns the cell at c. It panics if c is out of bounds; check with
// IsOutOfBounds first or use Lookup.
func (g *Grid[T]) Get(c geom.Coordinate) T {
	if g.IsOutOfBounds(c) {
		panic(fmt.Sprintf("%v: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height))
	}

	return g.cells[c.Y][c.X]
}

// Lookup returns the cell at c and true, or the zero value and false when c
// is out of bounds.
func (g *Grid[T]) Lookup(c geom.Coordinate) (T, bool) {
	if g.IsOutOfBounds(c) {
		var zero T
		return zero, false
	}

	return g.cells[c.Y][c.X], true
}

// neighborOrder is north, west, east, south.
var neighborOrder = [4]geom.Direction{geom.Up, geom.Left, geom.Right, geom.Down}

// Neighbors returns the up to four orthogonal neighbors of c, in order
// north, west, east, south. Edge cells have fewer entries.
func (g *Grid[T]) Neighbors(c geom.Coordinate) []Neighbor[T] {
	out := make([]Neighbor[T], 0, 4)
	for _, d := range neighborOrder {
		next, moved := d.Step(c)
		if !moved || g.IsOutOfBounds(next) {
			continue
		}
		out = append(out, Neighbor[T]{Value: g.cells[next.Y][next.X], At: next})
	}

	return out
}

// Transpose returns a new grid where cell (x, y) becomes (y, x).
// Complexity: O(W×H).
func (g *Grid[T]) Transpose() *Grid[T] {
	cells := make([][]T, g.width)
	for x := 0; x < g.width; x++ {
		col := make([]T, g.height)
		for y := 0; y < g.height; y++ {
			col[y] = g.cells[y][x]
		}
		cells[x] = col
	}

	return &Grid[T]{width: g.height, height: g.width, cells: cells}
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	return append([]T(nil), g.cells[y]...)
}

// Column returns a copy of column x.
func (g *Grid[T]) Column(x int) []T {
	col := make([]T, g.height)
	for y := range g.cells {
		col[y] = g.cells[y][x]
	}

	return col
}

// Rows returns a deep copy of all rows.
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, g.height)
	for y := range g.cells {
		out[y] = g.Row(y)
	}

	return out
}

// All iterates every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[geom.Coordinate, T] {
	return func(yield func(geom.Coordinate, T) bool) {
		for y, row := range g.cells {
			for x, v := range row {
				if !yield(geom.C(x, y), v) {
					return
				}
			}
		}
	}
}

// Find returns the first coordinate, in row-major order, whose cell
// satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (geom.Coordinate, bool) {
	for c, v := range g.All() {
		if match(v) {
			return c, true
		}
	}

	return geom.Coordinate{}, false
}

// Index maps c to its row-major index y*Width + x. Traversals use it to key
// flat visited arrays.
func (g *Grid[T]) Index(c geom.Coordinate) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid[T]) Coordinate(idx int) geom.Coordinate {
	return geom.C(idx%g.width, idx/g.width)
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for y := range a.cells {
		for x := range a.cells[y] {
			if a.cells[y][x] != b.cells[y][x] {
				return false
			}
		}
	}

	return true
}
