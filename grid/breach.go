package grid

import (
	"container/list"
	"fmt"
)

// MinBreach finds the route from start to end that passes through the
// fewest blocked cells. It answers "how many walls would have to be cleared"
// when an ordinary search reports no path.
//
// Behavior:
//  1. Validate that both endpoints are in bounds.
//  2. 0–1 BFS from start over every in-bounds cell:
//     • Moving into an open cell    → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when end is dequeued.
//  4. Reconstruct the route via predecessors.
//
// Returns the cells of the route (start and end included) and the number of
// blocked cells on it. A blocked start or end counts toward walls.
//
// Complexity: O(N²) time, O(N²) memory for distance and predecessor arrays.
func (g *Grid) MinBreach(start, end Cell) (path []Cell, walls int, err error) {
	if !g.InBounds(start) {
		return nil, 0, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, 0, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}

	n := g.size * g.size
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	si := g.Index(start)
	dist[si] = g.cost(start)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushBack(si)
	target := g.Index(end)
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			found = true
			break
		}
		uc := g.CellAt(u)
		for _, d := range cardinalOffsets {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			step := g.cost(vc)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// cost is the 0-1 weight of entering c.
func (g *Grid) cost(c Cell) int {
	if g.blocked.Has(c) {
		return 1
	}
	return 0
}
