package geom

import "fmt"

// Coordinate is an immutable (X, Y) lattice position. X grows to the right
// (column), Y grows downward (row).
type Coordinate struct {
	X, Y int
}

// C is a short constructor for Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Less orders coordinates by row, then by column. It is a strict total order,
// so sorted coordinate slices are reproducible.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}

	return c.X < o.X
}

// Compare returns -1, 0 or +1 following Less; handy with slices.SortFunc.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	default:
		return 0
	}
}

// Manhattan returns |x1-x2| + |y1-y2|.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
