package dish_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/dish"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

const platform = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

const tiltedNorth = `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....
`

const afterOneCycle = `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....
`

func parse(t *testing.T, text string) *grid.Grid[dish.Rock] {
	t.Helper()
	g, err := grid.Parse(text, dish.DecodeRock)
	require.NoError(t, err)
	return g
}

func render(g *grid.Grid[dish.Rock]) string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		for _, r := range row {
			sb.WriteRune(rune(r))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestNorthLoad_Sample(t *testing.T) {
	got, err := dish.NorthLoad(platform)
	require.NoError(t, err)
	assert.Equal(t, 136, got)
}

func TestTilt_North(t *testing.T) {
	g := parse(t, platform)
	assert.Equal(t, tiltedNorth, render(dish.Tilt(g, geom.Up)))
	// Input grid is untouched.
	assert.Equal(t, platform, render(g))
}

func TestCycle_Sample(t *testing.T) {
	g := parse(t, platform)
	assert.Equal(t, afterOneCycle, render(dish.Cycle(g)))
}

func TestTilt_Directions(t *testing.T) {
	g := parse(t, "O.#O.\n.O..O")
	assert.Equal(t, "O.#O.\nOO...\n", render(dish.Tilt(g, geom.Left)))
	assert.Equal(t, ".O#.O\n...OO\n", render(dish.Tilt(g, geom.Right)))
	assert.Equal(t, "OO#OO\n.....\n", render(dish.Tilt(g, geom.Up)))
	assert.Equal(t, "..#..\nOO.OO\n", render(dish.Tilt(g, geom.Down)))
}

func TestSpinLoad_Sample(t *testing.T) {
	got, err := dish.SpinLoad(platform, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, 64, got)

	// Zero cycles is the load of the untouched platform.
	got, err = dish.SpinLoad(platform, 0)
	require.NoError(t, err)
	assert.Equal(t, dish.Load(parse(t, platform)), got)

	one, err := dish.SpinLoad(platform, 1)
	require.NoError(t, err)
	assert.Equal(t, dish.Load(parse(t, afterOneCycle)), one)
}

func TestSpinLoad_Errors(t *testing.T) {
	_, err := dish.SpinLoad(platform, -1)
	assert.ErrorIs(t, err, dish.ErrNegativeCycles)

	_, err = dish.NorthLoad("O.x")
	assert.ErrorIs(t, err, grid.ErrUnknownCell)
}
