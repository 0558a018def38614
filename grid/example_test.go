// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// ExampleParse builds a digit grid and walks the neighbors of its center.
func ExampleParse() {
	g, err := grid.Parse("123\n456\n789", grid.Digits)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range g.Neighbors(geom.C(1, 1)) {
		fmt.Printf("%v=%d ", n.At, n.Value)
	}
	fmt.Println()
	// Output:
	// (1,0)=2 (0,1)=4 (2,1)=6 (1,2)=8
}

// ExampleGrid_Transpose swaps rows and columns.
func ExampleGrid_Transpose() {
	g, _ := grid.Parse("#..\n.#.", grid.Runes)
	for _, row := range g.Transpose().Rows() {
		fmt.Println(string(row))
	}
	// Output:
	// #.
	// .#
	// ..
}
