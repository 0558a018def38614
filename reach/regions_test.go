// File: reach/regions_test.go
package reach_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/reach"
)

// TestRegions_Simple finds two regions on a 4×3 map.
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: regions of sizes 4 and 2.
func TestRegions_Simple(t *testing.T) {
	g, _ := grid.Parse("#..#\n..##\n##..", grid.Runes)
	regions := reach.Regions(g, wall)
	if !assert.Len(t, regions, 2) {
		return
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.Equal(t, geom.C(1, 0), regions[0][0])
}

// TestRegions_Edges covers an all-wall map, a single open cell and nil.
func TestRegions_Edges(t *testing.T) {
	g, _ := grid.Parse("##\n##", grid.Runes)
	assert.Empty(t, reach.Regions(g, wall))

	g, _ = grid.Parse("#.", grid.Runes)
	assert.Equal(t, [][]geom.Coordinate{{geom.C(1, 0)}}, reach.Regions(g, wall))

	assert.Nil(t, reach.Regions[rune](nil, wall))

	g, _ = grid.Parse("#.\n.#", grid.Runes)
	regions := reach.Regions(g, nil)
	if assert.Len(t, regions, 1) {
		assert.Len(t, regions[0], 4)
	}
}

// TestRegions_CoversAllOpen: every open plot of the sample garden lands in
// exactly one region.
func TestRegions_CoversAllOpen(t *testing.T) {
	g, _ := grid.Parse(sampleGarden, reach.DecodePlot)
	open := 0
	for _, p := range g.All() {
		if !reach.IsRock(p) {
			open++
		}
	}
	total := 0
	for _, r := range reach.Regions(g, reach.IsRock) {
		total += len(r)
	}
	assert.Equal(t, open, total)
}
