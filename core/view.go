// File: view.go
// Role: Non-mutating graph views (copying topology with altered properties).
// Determinism:
//   - Preserves vertex order, edge order, edge IDs and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// UnweightedView returns a new Graph with identical topology but with all
// edge weights set to zero and the weighted flag turned off. The input graph
// is not mutated. Vertex metadata maps are shared with the source.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	out := NewGraph(WithDirected(g.Directed()))
	if g.Looped() {
		out.allowLoops = true
	}

	g.muVert.RLock()
	out.vertexOrder = make([]string, len(g.vertexOrder))
	copy(out.vertexOrder, g.vertexOrder)
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	out.edgeOrder = make([]string, len(g.edgeOrder))
	copy(out.edgeOrder, g.edgeOrder)
	for eid, e := range g.edges {
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: 0, Directed: e.Directed}
	}
	for id, incident := range g.adjacency {
		ids := make([]string, len(incident))
		copy(ids, incident)
		out.adjacency[id] = ids
	}
	for k, eid := range g.pairs {
		out.pairs[k] = eid
	}
	// Carry the counter so later AddEdge calls on the view cannot reuse IDs.
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	g.muEdgeAdj.RUnlock()

	return out
}
