// Package grid treats a square board of open and blocked cells as a graph.
// It supports:
//
//   - Four-connectivity (up, down, left, right) with a fixed expansion order
//   - Conversion to a *core.Graph for the shortest-path algorithms
//   - Identification of connected open regions
//   - Fewest-walls routes between two cells (MinBreach)
package grid

import "github.com/katalvlaran/gridpath/core"

// Grid is an immutable N×N board. Blocked cells are impassable.
type Grid struct {
	size    int
	blocked CellSet
}

// New constructs a Grid of the given size. The blocked set is copied;
// cells outside the bounds are dropped.
// Returns ErrEmptyGrid if size ≤ 0.
// Complexity: O(|blocked|).
func New(size int, blocked CellSet) (*Grid, error) {
	if size <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{size: size, blocked: make(CellSet, len(blocked))}
	for c := range blocked {
		if g.InBounds(c) {
			g.blocked[c] = struct{}{}
		}
	}

	return g, nil
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// IsBlocked reports whether c is an in-bounds wall.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.blocked.Has(c)
}

// IsOpen reports whether c is in bounds and not blocked.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && !g.blocked.Has(c)
}

// Blocked lists the walls in row-major order.
func (g *Grid) Blocked() []Cell {
	return g.blocked.Sorted()
}

// OpenCount returns the number of traversable cells.
func (g *Grid) OpenCount() int {
	return g.size*g.size - len(g.blocked)
}

// Neighbors returns the open cardinal neighbours of c in the order
// up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(cardinalOffsets))
	for _, d := range cardinalOffsets {
		n := c.Add(d)
		if g.IsOpen(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps c to its row-major index: Row*N + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.size + c.Col
}

// CellAt converts a row-major index back to a cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.size, Col: idx % g.size}
}

// ToGraph converts the open cells into a *core.Graph.
// Each open cell becomes a vertex with ID "row,col" and metadata {row,col};
// vertices are added in row-major order. Every adjacency between two open
// cells is stored as a pair of opposite arcs, and each cell's outgoing arcs
// are added in up, down, left, right order, so NeighborIDs on the result
// reproduces Neighbors on the grid. When weighted is true the graph is
// weighted and every arc costs 1; otherwise arcs have weight 0.
// Complexity: O(N²) time and memory.
func (g *Grid) ToGraph(weighted bool) *core.Graph {
	opts := []core.GraphOption{core.WithDirected(true)}
	var w int64
	if weighted {
		opts = append(opts, core.WithWeighted())
		w = 1
	}
	cg := core.NewGraph(opts...)

	// Vertices first, so isolated open cells still exist in the graph.
	for idx := 0; idx < g.size*g.size; idx++ {
		c := g.CellAt(idx)
		if !g.IsOpen(c) {
			continue
		}
		id := c.String()
		_ = cg.AddVertex(id)
		if v, err := cg.Vertex(id); err == nil {
			v.Metadata["row"] = c.Row
			v.Metadata["col"] = c.Col
		}
	}

	for idx := 0; idx < g.size*g.size; idx++ {
		c := g.CellAt(idx)
		if !g.IsOpen(c) {
			continue
		}
		for _, n := range g.Neighbors(c) {
			_, _ = cg.AddEdge(c.String(), n.String(), w)
		}
	}

	return cg
}
