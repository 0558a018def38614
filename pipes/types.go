// Package pipes follows the closed loop of pipe tiles that runs through a
// start tile and measures it.
//
// Every pipe tile has exactly two openings. A walker entering a tile leaves
// through the opening it did not come in by, so from the start tile the loop
// is fully determined by the first step. The start tile's own shape is not
// drawn; any neighbor whose pipe opens back toward it is a candidate first
// step, and the first candidate whose walk returns to the start wins.
//
// Measurements:
//
//   - Farthest: the loop has an even number of tiles and both directions
//     around it meet halfway, so the farthest tile is len(loop)/2 steps away.
//   - Inside: the loop tiles are the vertices of a lattice polygon. The
//     shoelace formula gives its area A, and Pick's theorem gives the
//     number of tiles strictly inside it: I = A - B/2 + 1, B = len(loop).
//
// Errors:
//
//   - ErrNilGrid: the grid pointer is nil.
//   - ErrNoStart: the map has no 'S' tile.
//   - ErrNoLoop:  no walk from the start tile returns to it.
package pipes

import (
	"errors"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for loop tracing.
var (
	// ErrNilGrid indicates a nil grid pointer.
	ErrNilGrid = errors.New("pipes: grid is nil")
	// ErrNoStart indicates the map has no start tile.
	ErrNoStart = errors.New("pipes: no start tile")
	// ErrNoLoop indicates the start tile is not part of a closed loop.
	ErrNoLoop = errors.New("pipes: start is not on a closed loop")
)

// Pipe is one tile of the field.
type Pipe rune

const (
	// Ground has no pipe ('.').
	Ground Pipe = '.'
	// Vertical connects north and south ('|').
	Vertical Pipe = '|'
	// Horizontal connects east and west ('-').
	Horizontal Pipe = '-'
	// NorthEast bends north to east ('L').
	NorthEast Pipe = 'L'
	// NorthWest bends north to west ('J').
	NorthWest Pipe = 'J'
	// SouthWest bends south to west ('7').
	SouthWest Pipe = '7'
	// SouthEast bends south to east ('F').
	SouthEast Pipe = 'F'
	// Start is the walker's tile; its shape is hidden ('S').
	Start Pipe = 'S'
)

// DecodePipe is the grid.Decoder for pipe maps.
var DecodePipe = grid.Table(map[rune]Pipe{
	'.': Ground,
	'|': Vertical,
	'-': Horizontal,
	'L': NorthEast,
	'J': NorthWest,
	'7': SouthWest,
	'F': SouthEast,
	'S': Start,
})

// openings lists the two ends of every drawn pipe.
var openings = map[Pipe][2]geom.Direction{
	Vertical:   {geom.Up, geom.Down},
	Horizontal: {geom.Left, geom.Right},
	NorthEast:  {geom.Up, geom.Right},
	NorthWest:  {geom.Up, geom.Left},
	SouthWest:  {geom.Down, geom.Left},
	SouthEast:  {geom.Down, geom.Right},
}

// Opens reports whether p has an opening toward d. Ground and Start have
// none.
func (p Pipe) Opens(d geom.Direction) bool {
	ends, ok := openings[p]
	return ok && (ends[0] == d || ends[1] == d)
}

// Exit returns the heading a walker leaves p with after entering it while
// moving in heading in. ok is false when p does not accept the walker.
func (p Pipe) Exit(in geom.Direction) (out geom.Direction, ok bool) {
	ends, drawn := openings[p]
	if !drawn {
		return 0, false
	}
	switch in.Opposite() {
	case ends[0]:
		return ends[1], true
	case ends[1]:
		return ends[0], true
	}

	return 0, false
}
