// Package bricks settles a snapshot of falling sand bricks and analyses the
// resulting support graph.
//
// A brick is an axis-aligned box between two corners. Settling drops bricks
// one at a time, lowest first, onto a height map of the (x, y) floor; each
// brick comes to rest one level above the highest column it covers, and the
// bricks whose tops form that level become its supporters.
//
// Complexity:
//
//   - Settle: O(N log N + Σ footprint) time, O(floor area + N) memory.
//   - Disintegrable: O(N + E).
//   - ChainReaction: O(N × (N + E)).
package bricks

import (
	"errors"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for snapshot parsing.
var (
	// ErrBadBrick indicates a line that is not "x,y,z~x,y,z".
	ErrBadBrick = errors.New("bricks: malformed brick")
	// ErrBelowGround indicates a brick with a corner below z=1.
	ErrBelowGround = errors.New("bricks: brick below ground")
)

// Brick is a box from Lo to Hi inclusive, with Lo ≤ Hi on every axis.
type Brick struct {
	Lo, Hi geom.Point3D
}

// Tower is a settled stack and its support graph, indexed by brick position
// in Bricks.
//
//	Supports[i]    – bricks resting directly on i.
//	SupportedBy[i] – bricks i rests directly on.
type Tower struct {
	Bricks      []Brick
	Supports    [][]int
	SupportedBy [][]int
}
