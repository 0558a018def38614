package geom_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
)

// TestDirection_RoundTrip checks Left∘Right and Up∘Down away from the edges.
func TestDirection_RoundTrip(t *testing.T) {
	for x := 1; x < 5; x++ {
		for y := 1; y < 5; y++ {
			c := geom.C(x, y)
			assert.Equal(t, c, geom.Right.Apply(geom.Left.Apply(c)), "left then right at %v", c)
			assert.Equal(t, c, geom.Down.Apply(geom.Up.Apply(c)), "up then down at %v", c)
			assert.Equal(t, c, geom.Left.Apply(geom.Right.Apply(c)), "right then left at %v", c)
		}
	}
}

// TestDirection_SaturatesAtEdges asserts the boundary exception explicitly:
// Left at X=0 and Up at Y=0 are no-ops, so the round trip breaks there.
func TestDirection_SaturatesAtEdges(t *testing.T) {
	origin := geom.C(0, 0)
	assert.Equal(t, origin, geom.Left.Apply(origin))
	assert.Equal(t, origin, geom.Up.Apply(origin))

	c := geom.C(0, 4)
	assert.Equal(t, c, geom.Left.Apply(c))
	assert.NotEqual(t, c, geom.Right.Apply(geom.Left.Apply(c)))

	_, moved := geom.Up.Step(geom.C(3, 0))
	assert.False(t, moved)
	next, moved := geom.Down.Step(geom.C(3, 0))
	assert.True(t, moved)
	assert.Equal(t, geom.C(3, 1), next)
}

func TestDirection_Turns(t *testing.T) {
	for _, d := range geom.Directions {
		assert.Equal(t, d, d.TurnLeft().TurnRight(), "%v", d)
		assert.Equal(t, d.Opposite(), d.TurnLeft().TurnLeft(), "%v", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "%v", d)
		assert.NotEqual(t, d.Horizontal(), d.TurnRight().Horizontal(), "%v", d)
	}
	assert.Equal(t, geom.Left, geom.Up.TurnLeft())
	assert.Equal(t, geom.Right, geom.Up.TurnRight())
}

func TestDirection_DeltaMatchesApply(t *testing.T) {
	c := geom.C(5, 5)
	for _, d := range geom.Directions {
		dx, dy := d.Delta()
		assert.Equal(t, geom.C(c.X+dx, c.Y+dy), d.Apply(c), "%v", d)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range geom.Directions {
		got, err := geom.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := geom.ParseDirection("N")
	assert.ErrorIs(t, err, geom.ErrUnknownDirection)
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range geom.Directions {
		assert.True(t, d.Valid(), "%v", d)
	}
	assert.False(t, geom.Direction(-1).Valid())
	assert.False(t, geom.Direction(4).Valid())
}

func TestCoordinate_OrderAndDistance(t *testing.T) {
	cs := []geom.Coordinate{geom.C(3, 1), geom.C(0, 2), geom.C(1, 1), geom.C(9, 0)}
	slices.SortFunc(cs, geom.Coordinate.Compare)
	assert.Equal(t, []geom.Coordinate{geom.C(9, 0), geom.C(1, 1), geom.C(3, 1), geom.C(0, 2)}, cs)

	assert.Equal(t, 0, geom.C(2, 2).Compare(geom.C(2, 2)))
	assert.Equal(t, 9, geom.C(1, 6).Manhattan(geom.C(5, 11)))
	assert.Equal(t, 9, geom.C(5, 11).Manhattan(geom.C(1, 6)))
	assert.Equal(t, "(4,7)", geom.C(4, 7).String())
}

func TestParsePoint3D(t *testing.T) {
	p, err := geom.ParsePoint3D("1,0,12")
	require.NoError(t, err)
	assert.Equal(t, geom.Point3D{X: 1, Y: 0, Z: 12}, p)
	assert.Equal(t, "1,0,12", p.String())

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		_, err := geom.ParsePoint3D(bad)
		assert.ErrorIs(t, err, geom.ErrBadPoint, "%q", bad)
	}
}
