// Package core provides a thread-safe in-memory Graph with a small,
// deterministic API surface. It is the graph model behind grid search:
// every open grid cell becomes a vertex, every pair of adjacent open cells
// an undirected unit edge.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration:
//
//	Vertices(), Edges(), Neighbors() and NeighborIDs() report insertion order.
//	Algorithms that expand neighbors in that order therefore break ties the
//	same way on every run, which is what makes shortest-path results
//	reproducible.
//
// Core methods:
//
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	Vertex(id string) (*Vertex, error)                  // O(1)
//	AddEdge(from, to string, weight int64) (string, error) // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	Neighbors(id string) ([]*Edge, error)               // O(deg)
//	NeighborIDs(id string) ([]string, error)            // O(deg)
//	UnweightedView(g *Graph) *Graph                     // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
