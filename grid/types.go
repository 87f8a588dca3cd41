// Package grid defines the cell, blocked-set and error types of the grid
// model, and the square Grid that turns them into a search graph.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a non-positive grid size.
	ErrEmptyGrid = errors.New("grid: size must be positive")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBadCell indicates a cell string that is not "row,col".
	ErrBadCell = errors.New("grid: malformed cell")
	// ErrNoPath indicates that no route exists between two cells.
	ErrNoPath = errors.New("grid: no path between cells")
)

// Cell is a grid coordinate. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// String renders the cell as "row,col". The same text is used as the
// vertex ID when the grid is converted to a core.Graph.
func (c Cell) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// Add returns c shifted by the offset d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b are exactly one cardinal step apart.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

// ParseCell parses "row,col" (surrounding spaces allowed).
func ParseCell(s string) (Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}

	return Cell{Row: r, Col: c}, nil
}

// CellSet is a set of cells, used for blocked cells.
// The zero value is not usable; make one with NewCellSet or make().
type CellSet map[Cell]struct{}

// NewCellSet returns a set holding cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}

	return s
}

// Has reports membership. A nil set contains nothing.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c Cell) { s[c] = struct{}{} }

// Remove deletes c.
func (s CellSet) Remove(c Cell) { delete(s, c) }

// Toggle flips membership of c and reports whether c is now in the set.
func (s CellSet) Toggle(c Cell) bool {
	if s.Has(c) {
		delete(s, c)
		return false
	}
	s[c] = struct{}{}

	return true
}

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}

	return out
}

// Sorted lists the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// cardinalOffsets is the fixed expansion order: up, down, left, right.
// Every search in this module expands neighbours in this order, which is
// what makes tie-breaking between equally short paths deterministic.
var cardinalOffsets = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
