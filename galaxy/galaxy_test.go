package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/galaxy"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

const image = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestDistanceSum_Sample(t *testing.T) {
	cases := []struct{ factor, want int }{
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tc := range cases {
		got, err := galaxy.DistanceSum(image, tc.factor)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "factor=%d", tc.factor)
	}
}

// TestExpand_Pairs numbers galaxies from 1 in row-major order and checks
// two known distances after doubling the empty lines.
func TestExpand_Pairs(t *testing.T) {
	g, err := grid.Parse(image, galaxy.DecodeCell)
	require.NoError(t, err)
	cs, err := galaxy.Expand(g, 2)
	require.NoError(t, err)
	require.Len(t, cs, 9)

	assert.Equal(t, 15, cs[0].Manhattan(cs[6]))
	assert.Equal(t, 17, cs[2].Manhattan(cs[5]))
	assert.Equal(t, 9, cs[4].Manhattan(cs[8]))
	assert.Equal(t, geom.C(4, 0), cs[0])
}

// TestExpand_Shift: two empty columns before x=3 and one empty row before
// y=4, factor 10, push (3,4) to (21,13).
func TestExpand_Shift(t *testing.T) {
	g, err := grid.Parse("#...\n#...\n#...\n....\n#..#", galaxy.DecodeCell)
	require.NoError(t, err)
	cs, err := galaxy.Expand(g, 10)
	require.NoError(t, err)
	assert.Contains(t, cs, geom.C(21, 13))
	assert.Contains(t, cs, geom.C(0, 13))
}

func TestExpand_FactorOne(t *testing.T) {
	g, _ := grid.Parse(image, galaxy.DecodeCell)
	cs, err := galaxy.Expand(g, 1)
	require.NoError(t, err)
	for _, c := range cs {
		assert.True(t, g.Get(c), "%v", c)
	}
}

func TestExpand_Errors(t *testing.T) {
	_, err := galaxy.Expand(nil, 2)
	assert.ErrorIs(t, err, galaxy.ErrNilGrid)

	_, err = galaxy.DistanceSum(image, 0)
	assert.ErrorIs(t, err, galaxy.ErrBadFactor)

	_, err = galaxy.DistanceSum("#.x", 2)
	assert.ErrorIs(t, err, grid.ErrUnknownCell)

	assert.Zero(t, galaxy.SumDistances(nil))
}
