package grid

// Components finds all contiguous regions of open cells under
// four-connectivity. Regions are reported in row-major order of their first
// cell; cells inside a region are in BFS discovery order.
//
// Time:   O(N²).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Components() [][]Cell {
	total := g.size * g.size
	seen := make([]bool, total)
	var comps [][]Cell

	for i0 := 0; i0 < total; i0++ {
		start := g.CellAt(i0)
		if seen[i0] || !g.IsOpen(start) {
			continue
		}
		// BFS to collect the region.
		queue := []Cell{start}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				ni := g.Index(n)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b are open cells in the same region.
// Complexity: O(N²) worst case.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.size*g.size)
	seen[g.Index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n == b {
				return true
			}
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
