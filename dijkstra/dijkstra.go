// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop as soon as the optional Target is settled.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by push order, so among equally distant vertices the one
//     discovered first is settled first. Combined with core.Graph's insertion-ordered
//     neighbors this makes the search behave exactly like a breadth-first search on
//     unit-weight graphs, and keeps results reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to the other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if not reached).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source and unreached vertices have no entry.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound) and Target if set (ErrTargetNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, ErrTargetNotFound
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, Target, thresholds).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64            // Push counter used for FIFO tie-breaking.
}

// init sets dist[v] = +∞ for every vertex and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The Target vertex has been settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}

		r.visited[u] = true
		cfg.OnSettle(u, d)
		if u == cfg.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge usable from u and attempts to improve distances
// to its neighbors. On a strict improvement it updates dist and prev and
// pushes a new heap entry.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.To
		if v == u {
			v = e.From
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order, breaks ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
