// File: methods_edges.go
// Role: Edge lifecycle and edge catalog queries.
// Determinism:
//   - Edge IDs are monotonic ("e1", "e2", ...); Edges() reports insertion order.
// Concurrency:
//   - Vertices are created first (muVert), then the edge is linked under muEdgeAdj.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the leading byte of every generated edge ID.
const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to with the given weight and returns its ID.
// Missing endpoints are created on the fly.
//
// Steps:
//  1. Validate IDs, weight policy and loop policy.
//  2. Ensure both vertices exist.
//  3. Under muEdgeAdj: reject a parallel edge, generate the ID, store,
//     link adjacency for both endpoints (one for a loop).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}
	directed := g.Directed()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.pairs[[2]string{from, to}]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)

	g.pairs[[2]string{from, to}] = eid
	g.adjacency[from] = append(g.adjacency[from], eid)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], eid)
		if !directed {
			g.pairs[[2]string{to, from}] = eid
		}
	}

	return eid, nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs
// the mirror direction is also reported as present.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.pairs[[2]string{from, to}]

	return ok
}

// Edges returns all edges in insertion order.
// The *Edge values are shared with the graph; treat them as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next unique textual edge ID.
// Safe for concurrent callers; avoids fmt.Sprintf on the hot path.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
