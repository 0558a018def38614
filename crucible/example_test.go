// Package crucible_test provides runnable examples for turn-limited search.
package crucible_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/crucible"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// ExampleMinimumCost finds the cheapest route across a small cost map with
// and without a minimum run before turning.
func ExampleMinimumCost() {
	g, _ := grid.Parse("1111\n9991\n9991", grid.Digits)
	from, to := geom.C(0, 0), geom.C(3, 2)

	short, _ := crucible.MinimumCost(g, from, to)
	long, _ := crucible.MinimumCost(g, from, to, crucible.WithRunLimits(2, 3))
	fmt.Println(short, long)

	_, err := crucible.MinimumCost(g, from, to, crucible.WithRunLimits(4, 10))
	fmt.Println(err)
	// Output:
	// 5 5
	// crucible: no admissible path
}
