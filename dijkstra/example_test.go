package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// ExampleDijkstra_triangle computes distances on a triangle where the
// two-hop route beats the direct edge.
func ExampleDijkstra_triangle() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExamplePathTo stops at a target and rebuilds the route to it.
func ExamplePathTo() {
	// Source graph g:
	//	    (E)
	//	  3/   \4
	//	  /     \
	//	(C)──10─(D)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(A)──4──(B)
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		U, V string
		W    int64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "D", 5},
		{"C", "D", 10},
		{"C", "E", 3},
		{"E", "D", 4},
	} {
		_, _ = g.AddEdge(e.U, e.V, e.W)
	}

	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source("A"),
		dijkstra.Target("D"),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := dijkstra.PathTo(prev, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dist["D"], path)
	// Output: 9 [A B D]
}
