// File: methods_adjacent.go
// Role: Adjacency queries used by traversal algorithms.
// Determinism:
//   - Neighbors/NeighborIDs follow edge insertion order for the vertex.

package core

// Neighbors returns the edges usable from vertex id, in the order they were
// added to the graph.
//
// Adjacency policy:
//   - Undirected edges are usable from both endpoints.
//   - Directed edges are usable only from their From vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d), d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	incident := g.adjacency[id]
	out := make([]*Edge, 0, len(incident))
	for _, eid := range incident {
		e := g.edges[eid]
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// NeighborIDs returns the IDs of vertices reachable from id over one edge,
// without duplicates, in edge insertion order.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
//
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(edges))
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		other := e.To
		if e.To == id {
			other = e.From
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}

	return out, nil
}
