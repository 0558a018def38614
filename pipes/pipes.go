package pipes

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/lagoon"
)

// Loop returns the tiles of the loop through the start tile in walking
// order, starting with the start tile itself.
// Returns ErrNilGrid, ErrNoStart or ErrNoLoop.
func Loop(g *grid.Grid[Pipe]) ([]geom.Coordinate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, ok := g.Find(func(p Pipe) bool { return p == Start })
	if !ok {
		return nil, ErrNoStart
	}

	for _, n := range g.Neighbors(start) {
		d := toward(start, n.At)
		if !n.Value.Opens(d.Opposite()) {
			continue
		}
		if loop, closed := walk(g, start, d); closed {
			return loop, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrNoLoop, start)
}

// toward returns the heading that steps from a to its neighbor b.
func toward(a, b geom.Coordinate) geom.Direction {
	for _, d := range geom.Directions {
		if next, moved := d.Step(a); moved && next == b {
			return d
		}
	}
	panic(fmt.Sprintf("pipes: %v and %v are not adjacent", a, b))
}

// walk follows the pipes from start with first heading d until it is back
// on start (closed) or falls off the pipes.
func walk(g *grid.Grid[Pipe], start geom.Coordinate, d geom.Direction) ([]geom.Coordinate, bool) {
	loop := []geom.Coordinate{start}
	at := start
	for range g.Width() * g.Height() {
		next, moved := d.Step(at)
		if !moved || g.IsOutOfBounds(next) {
			return nil, false
		}
		if next == start {
			return loop, true
		}
		out, ok := g.Get(next).Exit(d)
		if !ok {
			return nil, false
		}
		loop = append(loop, next)
		at, d = next, out
	}

	return nil, false
}

// Farthest returns the number of steps along loop to the tile farthest from
// its first tile.
func Farthest(loop []geom.Coordinate) int {
	return len(loop) / 2
}

// Inside returns the number of tiles strictly enclosed by loop.
func Inside(loop []geom.Coordinate) int64 {
	if len(loop) < 4 {
		return 0
	}
	vs := make([]lagoon.Vertex, len(loop))
	for i, c := range loop {
		vs[i] = lagoon.Vertex{X: int64(c.X), Y: int64(c.Y)}
	}

	return (lagoon.ShoelaceArea(vs)-int64(len(loop)))/2 + 1
}

// FarthestSteps parses a pipe map and returns Farthest of its loop.
func FarthestSteps(text string) (int, error) {
	loop, err := parseLoop(text)
	if err != nil {
		return 0, err
	}

	return Farthest(loop), nil
}

// Enclosed parses a pipe map and returns Inside of its loop.
func Enclosed(text string) (int64, error) {
	loop, err := parseLoop(text)
	if err != nil {
		return 0, err
	}

	return Inside(loop), nil
}

func parseLoop(text string) ([]geom.Coordinate, error) {
	g, err := grid.Parse(text, DecodePipe)
	if err != nil {
		return nil, err
	}

	return Loop(g)
}
