package board

import "github.com/katalvlaran/gridpath/grid"

// Kind is what a renderer should draw in a cell.
type Kind int

const (
	Empty Kind = iota
	Start
	End
	Wall
	Path
)

// Snapshot is an immutable copy of a Board.
type Snapshot struct {
	Size     int
	State    State
	Start    grid.Cell
	End      grid.Cell
	HasStart bool
	HasEnd   bool
	Blocked  grid.CellSet
	Path     []grid.Cell
}

// KindAt classifies c. Start and End win over Path, Path wins over Wall.
func (s Snapshot) KindAt(c grid.Cell) Kind {
	switch {
	case s.HasStart && c == s.Start:
		return Start
	case s.HasEnd && c == s.End:
		return End
	}
	for _, p := range s.Path {
		if p == c {
			return Path
		}
	}
	if s.Blocked.Has(c) {
		return Wall
	}

	return Empty
}

// Kinds returns the whole board as rows of kinds.
// Complexity: O(N² + |Path|).
func (s Snapshot) Kinds() [][]Kind {
	onPath := make(map[grid.Cell]bool, len(s.Path))
	for _, p := range s.Path {
		onPath[p] = true
	}

	rows := make([][]Kind, s.Size)
	for r := range rows {
		rows[r] = make([]Kind, s.Size)
		for col := range rows[r] {
			c := grid.Cell{Row: r, Col: col}
			switch {
			case s.HasStart && c == s.Start:
				rows[r][col] = Start
			case s.HasEnd && c == s.End:
				rows[r][col] = End
			case onPath[c]:
				rows[r][col] = Path
			case s.Blocked.Has(c):
				rows[r][col] = Wall
			}
		}
	}

	return rows
}

// Steps is the length of the displayed path, or 0.
func (s Snapshot) Steps() int {
	if len(s.Path) == 0 {
		return 0
	}
	return len(s.Path) - 1
}
