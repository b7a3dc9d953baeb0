package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// scatter builds an n×n grid with roughly 20% blocked tiles, keeping the
// corners open.
func scatter(b *testing.B, n int, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	gg, err := gridgraph.NewGridGraph(n, n, gridgraph.GridOptions{Conn: conn})
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(5) == 0 {
				_ = gg.SetCost(x, y, astar.Impassable)
			}
		}
	}
	_ = gg.SetCost(0, 0, 0)
	_ = gg.SetCost(n-1, n-1, 0)

	return gg
}

// BenchmarkSearch_Conn4 measures corner-to-corner searches on a 256×256 grid.
// Complexity: O(W×H×4 log(W×H)) worst case.
func BenchmarkSearch_Conn4(b *testing.B) {
	const n = 256
	gg := scatter(b, n, gridgraph.Conn4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.Search(0, 0, n-1, n-1)
	}
}

// BenchmarkSearch_Conn8 is BenchmarkSearch_Conn4 with diagonals enabled.
func BenchmarkSearch_Conn8(b *testing.B) {
	const n = 256
	gg := scatter(b, n, gridgraph.Conn8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.Search(0, 0, n-1, n-1)
	}
}

// BenchmarkConnectedComponents measures region labelling on a 512×512 grid.
func BenchmarkConnectedComponents(b *testing.B) {
	gg := scatter(b, 512, gridgraph.Conn4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
