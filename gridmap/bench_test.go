package gridmap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
)

// randomGrid builds an n×n grid where roughly one cell in four is blocked.
func randomGrid(n int, seed int64) [][]int {
	r := rand.New(rand.NewSource(seed))
	grid := make([][]int, n)
	for y := range grid {
		row := make([]int, n)
		for x := range row {
			if r.Intn(4) != 0 {
				row[x] = 1
			}
		}
		grid[y] = row
	}

	return grid
}

// BenchmarkConnectedComponents measures flood fill on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	m, err := gridmap.From2D(randomGrid(500, 42))
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ConnectedComponents()
	}
}

// BenchmarkNeighbors measures a single adjacency query.
func BenchmarkNeighbors(b *testing.B) {
	m, err := gridmap.From2D(randomGrid(64, 7))
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	c := gridmap.Cell{X: 32, Y: 32}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Neighbors(c)
	}
}
