package grid

import (
	"errors"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates the decoder could not map a rune.
	ErrUnknownCell = errors.New("grid: unknown cell")
	// ErrOutOfBounds is the panic text of Get for a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Decoder maps one input rune to a cell value. It must reject every rune it
// does not know by returning an error.
type Decoder[T any] func(r rune) (T, error)

// Neighbor pairs an adjacent cell value with its coordinate.
type Neighbor[T any] struct {
	Value T
	At    geom.Coordinate
}

// Grid is a rectangular, row-major map of cells. It is immutable once built:
// dimensions are read through Width and Height, and cells[y][x] holds the
// value at (x, y).
type Grid[T any] struct {
	width, height int
	cells         [][]T
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }
