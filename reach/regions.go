package reach

import (
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Regions finds every 4-connected region of open cells (blocked returns
// false). Regions are returned in row-major order of their first cell; each
// region lists its cells in BFS discovery order. A nil blocked treats every
// cell as open.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Regions[T any](g *grid.Grid[T], blocked func(T) bool) [][]geom.Coordinate {
	if g == nil {
		return nil
	}
	if blocked == nil {
		blocked = func(T) bool { return false }
	}
	seen := make([]bool, g.Width()*g.Height())
	var regions [][]geom.Coordinate

	for c, v := range g.All() {
		if blocked(v) || seen[g.Index(c)] {
			continue
		}
		// BFS to collect the region
		seen[g.Index(c)] = true
		region := []geom.Coordinate{c}
		for qi := 0; qi < len(region); qi++ {
			for _, n := range g.Neighbors(region[qi]) {
				idx := g.Index(n.At)
				if blocked(n.Value) || seen[idx] {
					continue
				}
				seen[idx] = true
				region = append(region, n.At)
			}
		}
		regions = append(regions, region)
	}

	return regions
}
