// Package geom holds the small value types every grid algorithm in gridkit
// shares: a 2-D lattice Coordinate, a four-way compass Direction and a 3-D
// Point3D.
//
// Coordinates never go negative. Moving Up from row 0 or Left from column 0
// saturates, so Apply returns the same coordinate. Traversals detect "fell
// off the top/left edge" by comparing the coordinate before and after the
// move, and "fell off the bottom/right edge" with a bounds check on the grid.
//
//	c := geom.Coordinate{X: 0, Y: 3}
//	geom.Left.Apply(c) == c          // true, saturated
//	geom.Right.Apply(c)              // {1 3}
//
// Complexity: every operation is O(1).
package geom
