package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
)

// serpentine walls off every second row but one end cell, alternating
// sides, so the only route from 0,0 to the far corner snakes through the
// whole board. The last row is always open.
func serpentine(n int) grid.CellSet {
	walls := make(grid.CellSet)
	for r := 1; r < n-1; r += 2 {
		gap := n - 1
		if r%4 == 3 {
			gap = 0
		}
		for c := 0; c < n; c++ {
			if c != gap {
				walls.Add(grid.Cell{Row: r, Col: c})
			}
		}
	}
	return walls
}

// scattered blocks roughly a fifth of the board, deterministically, and
// keeps the corners open.
func scattered(n int) grid.CellSet {
	rng := rand.New(rand.NewSource(7))
	walls := make(grid.CellSet)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(5) == 0 {
				walls.Add(grid.Cell{Row: r, Col: c})
			}
		}
	}
	walls.Remove(grid.Cell{})
	walls.Remove(grid.Cell{Row: n - 1, Col: n - 1})
	return walls
}

// boardGraph is the graph a BFS query runs on: the unweighted view of the
// directed grid graph.
func boardGraph(tb testing.TB, n int, walls grid.CellSet) *core.Graph {
	tb.Helper()
	g, err := grid.New(n, walls)
	if err != nil {
		tb.Fatalf("grid.New(%d): %v", n, err)
	}
	return core.UnweightedView(g.ToGraph(true))
}

func corner(n int) string { return grid.Cell{Row: n - 1, Col: n - 1}.String() }

func TestSerpentine_SingleSnakingRoute(t *testing.T) {
	// Open rows are crossed end to end, each wall row through its gap.
	for n, want := range map[int]int{10: 5*10 + 4 + 1, 100: 49*100 + 49 + 2} {
		res, err := bfs.BFS(boardGraph(t, n, serpentine(n)), "0,0", bfs.WithTarget(corner(n)))
		if err != nil {
			t.Fatalf("n=%d: BFS error: %v", n, err)
		}
		path, err := res.PathTo(corner(n))
		if err != nil {
			t.Fatalf("n=%d: PathTo error: %v", n, err)
		}
		if len(path) != want {
			t.Errorf("n=%d: path has %d cells, want %d", n, len(path), want)
		}
		if res.Depth[corner(n)] != want-1 {
			t.Errorf("n=%d: depth %d, want %d", n, res.Depth[corner(n)], want-1)
		}
	}
}

func benchmarkBoard(b *testing.B, n int, walls grid.CellSet) {
	g := boardGraph(b, n, walls)
	target := corner(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, "0,0", bfs.WithTarget(target)); err != nil {
			b.Fatalf("BFS failed: %v", err)
		}
	}
}

// BenchmarkBFS_Serpentine measures a corner-to-corner query whose route
// covers the whole board. Complexity: O(N²).
func BenchmarkBFS_Serpentine(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkBoard(b, n, serpentine(n))
		})
	}
}

// BenchmarkBFS_Scattered measures corner-to-corner queries on boards with
// random walls.
func BenchmarkBFS_Scattered(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkBoard(b, n, scattered(n))
		})
	}
}

// BenchmarkBFS_DepthCapped measures a query cut off by WithMaxDepth, the
// way a step limit bounds the search.
func BenchmarkBFS_DepthCapped(b *testing.B) {
	const n = 100
	g := boardGraph(b, n, nil)
	target := corner(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, "0,0", bfs.WithTarget(target), bfs.WithMaxDepth(n)); err != nil {
			b.Fatalf("BFS failed: %v", err)
		}
	}
}
