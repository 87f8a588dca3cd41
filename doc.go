// Package gridpath finds shortest paths on square grids with walls.
//
// 🚀 What is gridpath?
//
//	A small, deterministic toolkit for 4-connected grid routing:
//		• core:       thread-safe graph with insertion-ordered adjacency
//		• grid:       cells, wall sets, grid→graph conversion, regions, MinBreach
//		• dijkstra:   lazy decrease-key Dijkstra with FIFO tie-breaking
//		• bfs:        breadth-first search with hooks, depth cap and target
//		• pathfinder: the query contract, FindShortestPath(size, start, end, blocked)
//
// Front ends live under cmd/:
//
//	cmd/gridpath: one query from flags or a text layout, ASCII/PNG output
//	cmd/gridpath-gui: interactive Fyne window (click start, end, then walls)
//
// Quick start:
//
//	res, err := pathfinder.FindShortestPath(3, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, nil)
//	// res.Found == true, res.Steps() == 4
//
// An unreachable end is not an error: the result has Found == false.
// Invalid input (start == end, endpoints out of bounds or on a wall,
// size ≤ 0) wraps pathfinder.ErrInvalidQuery.
//
// Determinism: neighbors are expanded up, down, left, right and ties are
// resolved in discovery order, so the same query always yields the same
// path, whichever strategy runs it.
package gridpath
