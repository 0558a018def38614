// Package dish tilts a platform of rounded and cube-shaped rocks and
// measures the load on its north support beams.
//
// Rounded rocks ('O') roll until they hit the edge, a cube rock ('#') or
// another settled rock; cube rocks never move. A tilt is a per-line roll:
// horizontal tilts roll each row, vertical tilts transpose the platform,
// roll each row, and transpose back.
package dish

import (
	"errors"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// ErrNegativeCycles is returned by SpinLoad for a negative cycle count.
var ErrNegativeCycles = errors.New("dish: cycle count must be non-negative")

// Rock is one platform cell.
type Rock rune

const (
	// Empty is free space ('.').
	Empty Rock = '.'
	// Round rolls when tilted ('O').
	Round Rock = 'O'
	// Cube stays put ('#').
	Cube Rock = '#'
)

// DecodeRock is the grid.Decoder for platform maps.
var DecodeRock = grid.Table(map[rune]Rock{
	'.': Empty,
	'O': Round,
	'#': Cube,
})

// spin is the order of one spin cycle.
var spin = [4]geom.Direction{geom.Up, geom.Left, geom.Down, geom.Right}

// Tilt returns the platform after tilting it toward d.
func Tilt(g *grid.Grid[Rock], d geom.Direction) *grid.Grid[Rock] {
	vertical := !d.Horizontal()
	if vertical {
		g = g.Transpose()
	}
	toStart := d == geom.Up || d == geom.Left

	rows := g.Rows()
	for _, row := range rows {
		roll(row, toStart)
	}
	// rows keeps g's rectangular shape, so New cannot fail.
	out, _ := grid.New(rows)
	if vertical {
		out = out.Transpose()
	}

	return out
}

// roll moves every Round rock in row toward index 0 (toStart) or toward the
// end, stopping at Cube rocks.
func roll(row []Rock, toStart bool) {
	if toStart {
		free := 0
		for i, r := range row {
			switch r {
			case Cube:
				free = i + 1
			case Round:
				row[i], row[free] = Empty, Round
				free++
			}
		}
		return
	}
	free := len(row) - 1
	for i := len(row) - 1; i >= 0; i-- {
		switch row[i] {
		case Cube:
			free = i - 1
		case Round:
			row[i], row[free] = Empty, Round
			free--
		}
	}
}

// Load sums, over every Round rock, its distance in rows from the south edge
// counting the bottom row as 1.
func Load(g *grid.Grid[Rock]) int {
	total := 0
	for c, r := range g.All() {
		if r == Round {
			total += g.Height() - c.Y
		}
	}

	return total
}

// Cycle runs one spin cycle: north, west, south, east.
func Cycle(g *grid.Grid[Rock]) *grid.Grid[Rock] {
	for _, d := range spin {
		g = Tilt(g, d)
	}

	return g
}

// NorthLoad parses a platform, tilts it north and returns its Load.
func NorthLoad(text string) (int, error) {
	g, err := grid.Parse(text, DecodeRock)
	if err != nil {
		return 0, err
	}

	return Load(Tilt(g, geom.Up)), nil
}

// SpinLoad parses a platform, runs cycles spin cycles and returns its Load.
// Platforms settle into a loop quickly, so once a state repeats the
// remaining cycles are skipped arithmetically.
func SpinLoad(text string, cycles int) (int, error) {
	if cycles < 0 {
		return 0, ErrNegativeCycles
	}
	g, err := grid.Parse(text, DecodeRock)
	if err != nil {
		return 0, err
	}

	seen := map[string]int{}
	var history []*grid.Grid[Rock]
	for i := 0; i < cycles; i++ {
		key := fingerprint(g)
		if first, ok := seen[key]; ok {
			period := i - first
			return Load(history[first+(cycles-first)%period]), nil
		}
		seen[key] = i
		history = append(history, g)
		g = Cycle(g)
	}

	return Load(g), nil
}

func fingerprint(g *grid.Grid[Rock]) string {
	var sb strings.Builder
	sb.Grow(g.Width() * g.Height())
	for _, r := range g.All() {
		sb.WriteRune(rune(r))
	}

	return sb.String()
}
