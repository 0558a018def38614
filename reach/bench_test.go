package reach_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/reach"
)

// BenchmarkCountAt measures a 64-step flood on an open 131×131 garden.
// Complexity: O(K×W×H)
func BenchmarkCountAt(b *testing.B) {
	const n = 131
	row := strings.Repeat(".", n)
	g, err := grid.Parse(strings.Repeat(row+"\n", n), reach.DecodePlot)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	start := geom.C(n/2, n/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.CountAt(g, start, reach.IsRock, 64)
	}
}
