package reach

import "github.com/katalvlaran/gridkit/grid"

// Plot is one cell of a garden map.
type Plot int

const (
	// Open is a garden plot ('.').
	Open Plot = iota
	// Rock blocks movement ('#').
	Rock
	// Start is the walker's initial plot ('S'); it is open.
	Start
)

// DecodePlot maps '.', '#' and 'S'.
var DecodePlot = grid.Table(map[rune]Plot{
	'.': Open,
	'#': Rock,
	'S': Start,
})

// IsRock is the blocked predicate for garden maps.
func IsRock(p Plot) bool { return p == Rock }

// Garden parses a garden map and counts the plots the walker can stand on
// after exactly steps moves from 'S'.
func Garden(text string, steps int, opts ...Option) (int, error) {
	g, err := grid.Parse(text, DecodePlot)
	if err != nil {
		return 0, err
	}
	start, ok := g.Find(func(p Plot) bool { return p == Start })
	if !ok {
		return 0, ErrNoStart
	}

	return CountAt(g, start, IsRock, steps, opts...)
}
