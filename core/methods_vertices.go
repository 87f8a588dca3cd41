// File: methods_vertices.go
// Role: Vertex lifecycle and vertex catalog queries.
// Determinism:
//   - Vertices() reports insertion order.
// Concurrency:
//   - muVert guards the catalog; muEdgeAdj is taken second when adjacency is bootstrapped.

package core

// AddVertex inserts a vertex with the given ID.
//
// Behavior:
//   - Idempotent: adding an existing ID is a no-op and keeps its original position.
//   - Metadata is initialized to a non-nil map.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertexOrder = append(g.vertexOrder, id)

	// Bootstrap an empty adjacency bucket so Neighbors() on an isolated
	// vertex returns an empty slice rather than an error.
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored vertex record for id.
// The returned pointer is shared with the graph; treat Metadata as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy; callers may modify it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
