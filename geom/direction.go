package geom

import (
	"errors"
	"fmt"
)

// ErrUnknownDirection is returned by ParseDirection for an unrecognized token.
var ErrUnknownDirection = errors.New("geom: unknown direction")

// Direction is one of the four compass headings.
type Direction int

const (
	// Up moves toward row 0.
	Up Direction = iota
	// Down moves toward larger rows.
	Down
	// Left moves toward column 0.
	Left
	// Right moves toward larger columns.
	Right
)

// Directions lists every heading in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four declared headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Apply returns the coordinate one step away in direction d.
// Up at Y=0 and Left at X=0 saturate: the input coordinate is returned
// unchanged, and callers must treat that as "did not move".
func (d Direction) Apply(c Coordinate) Coordinate {
	switch d {
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Down:
		c.Y++
	case Left:
		if c.X > 0 {
			c.X--
		}
	case Right:
		c.X++
	}

	return c
}

// Step applies d and reports whether the coordinate actually changed.
func (d Direction) Step(c Coordinate) (Coordinate, bool) {
	next := d.Apply(c)

	return next, next != c
}

// Delta returns the unit (dx, dy) vector for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}

	return 0, 0
}

// TurnLeft rotates d a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight rotates d a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// String returns the single-letter form used by dig plans: U, D, L or R.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection decodes U, D, L or R (case-sensitive).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
