// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from several
// goroutines while one of them is being built.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data (grid graphs keep row/col here).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. Views share it with their source.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// Unlike a map-of-maps adjacency, Graph remembers insertion order for
// vertices and for the incident edges of every vertex. Vertices(), Edges(),
// Neighbors() and NeighborIDs() all report in that order, which makes every
// traversal built on top of Graph reproducible for a fixed construction
// sequence.
//
// muVert protects vertices and vertexOrder; muEdgeAdj protects edges,
// edgeOrder, adjacency and pairs. Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, adjacency, pairs

	// Configuration flags
	directed   bool // edge orientation
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID  uint64             // atomic edge ID generator
	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // vertex IDs in insertion order
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []string           // edge IDs in insertion order

	// adjacency[vertexID] lists incident edge IDs in insertion order.
	adjacency map[string][]string

	// pairs[[from,to]] = edge ID; undirected edges are registered both ways.
	pairs map[[2]string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, without loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
		pairs:     make(map[[2]string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
