package pipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/pipes"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....
`

const winding = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const twoRooms = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const scattered = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

const junk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

func TestFarthestSteps(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"square", square, 4},
		{"winding", winding, 8},
	}
	for _, tc := range cases {
		got, err := pipes.FarthestSteps(tc.text)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestEnclosed(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"square", square, 1},
		{"winding", winding, 1},
		{"two rooms", twoRooms, 4},
		{"scattered", scattered, 8},
		{"junk pipes", junk, 10},
	}
	for _, tc := range cases {
		got, err := pipes.Enclosed(tc.text)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

// TestLoop_Order checks the walk on the square loop: it starts on S, visits
// every loop tile once, and consecutive tiles are adjacent.
func TestLoop_Order(t *testing.T) {
	g, err := grid.Parse(square, pipes.DecodePipe)
	require.NoError(t, err)
	loop, err := pipes.Loop(g)
	require.NoError(t, err)

	require.Len(t, loop, 8)
	assert.Equal(t, geom.C(1, 1), loop[0])
	seen := map[geom.Coordinate]bool{}
	for i, c := range loop {
		assert.False(t, seen[c], "%v visited twice", c)
		seen[c] = true
		next := loop[(i+1)%len(loop)]
		assert.Equal(t, 1, c.Manhattan(next), "%v -> %v", c, next)
	}
	assert.False(t, seen[geom.C(2, 2)])
}

func TestPipe_Exit(t *testing.T) {
	out, ok := pipes.NorthEast.Exit(geom.Down)
	require.True(t, ok)
	assert.Equal(t, geom.Right, out)

	out, ok = pipes.NorthEast.Exit(geom.Left)
	require.True(t, ok)
	assert.Equal(t, geom.Up, out)

	_, ok = pipes.NorthEast.Exit(geom.Up)
	assert.False(t, ok)
	_, ok = pipes.Ground.Exit(geom.Up)
	assert.False(t, ok)
	_, ok = pipes.Start.Exit(geom.Up)
	assert.False(t, ok)

	assert.True(t, pipes.Vertical.Opens(geom.Up))
	assert.False(t, pipes.Vertical.Opens(geom.Left))
}

func TestLoop_Errors(t *testing.T) {
	_, err := pipes.Loop(nil)
	assert.ErrorIs(t, err, pipes.ErrNilGrid)

	_, err = pipes.FarthestSteps("...\n.|.\n...")
	assert.ErrorIs(t, err, pipes.ErrNoStart)

	_, err = pipes.FarthestSteps("S-7\n..|\n...")
	assert.ErrorIs(t, err, pipes.ErrNoLoop)

	_, err = pipes.Enclosed("S-x")
	assert.ErrorIs(t, err, grid.ErrUnknownCell)

	assert.Zero(t, pipes.Inside(nil))
}
