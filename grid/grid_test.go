package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Cell and CellSet
//----------------------------------------------------------------------------//

func TestParseCell(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Cell
		err  error
	}{
		{"0,0", grid.Cell{}, nil},
		{" 3 , 7 ", grid.Cell{Row: 3, Col: 7}, nil},
		{"-1,2", grid.Cell{Row: -1, Col: 2}, nil},
		{"1", grid.Cell{}, grid.ErrBadCell},
		{"1,2,3", grid.Cell{}, grid.ErrBadCell},
		{"a,2", grid.Cell{}, grid.ErrBadCell},
		{"2,b", grid.Cell{}, grid.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := grid.ParseCell(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String must round-trip")
		})
	}
}

func TestManhattanAndAdjacent(t *testing.T) {
	a := grid.Cell{Row: 0, Col: 0}
	b := grid.Cell{Row: 2, Col: 3}
	assert.Equal(t, 5, grid.Manhattan(a, b))
	assert.Equal(t, 5, grid.Manhattan(b, a))
	assert.True(t, grid.Adjacent(a, grid.Cell{Row: 0, Col: 1}))
	assert.False(t, grid.Adjacent(a, grid.Cell{Row: 1, Col: 1}), "diagonal is not adjacent")
	assert.False(t, grid.Adjacent(a, a))
}

func TestCellSet(t *testing.T) {
	s := grid.NewCellSet(grid.Cell{Row: 2, Col: 0}, grid.Cell{Row: 0, Col: 5})
	assert.True(t, s.Has(grid.Cell{Row: 2, Col: 0}))

	assert.True(t, s.Toggle(grid.Cell{Row: 1, Col: 1}))
	assert.False(t, s.Toggle(grid.Cell{Row: 1, Col: 1}))
	assert.False(t, s.Has(grid.Cell{Row: 1, Col: 1}))

	c := s.Clone()
	c.Remove(grid.Cell{Row: 2, Col: 0})
	assert.True(t, s.Has(grid.Cell{Row: 2, Col: 0}), "clone must be independent")

	s.Add(grid.Cell{Row: 0, Col: 1})
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 5}, {Row: 2, Col: 0}}, s.Sorted())

	var empty grid.CellSet
	assert.False(t, empty.Has(grid.Cell{}))
}

//----------------------------------------------------------------------------//
// New, InBounds, Neighbors
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	for _, size := range []int{0, -3} {
		_, err := grid.New(size, nil)
		if !errors.Is(err, grid.ErrEmptyGrid) {
			t.Errorf("New(%d) error = %v; want ErrEmptyGrid", size, err)
		}
	}
}

func TestNew_DropsOutOfBoundsWalls(t *testing.T) {
	blocked := grid.NewCellSet(grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 5, Col: 5}, grid.Cell{Row: -1, Col: 0})
	g, err := grid.New(3, blocked)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}}, g.Blocked())
	assert.Equal(t, 8, g.OpenCount())

	// Mutating the caller's set afterwards must not affect the grid.
	blocked.Add(grid.Cell{Row: 0, Col: 0})
	assert.True(t, g.IsOpen(grid.Cell{Row: 0, Col: 0}))
}

func TestInBounds(t *testing.T) {
	g, err := grid.New(3, nil)
	require.NoError(t, err)

	for _, c := range []grid.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 2}} {
		assert.True(t, g.InBounds(c), "InBounds(%s)", c)
	}
	for _, c := range []grid.Cell{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%s)", c)
	}
}

func TestNeighbors_OrderAndFiltering(t *testing.T) {
	g, err := grid.New(3, grid.NewCellSet(grid.Cell{Row: 1, Col: 2}))
	require.NoError(t, err)

	// Center: up, down, left; right is blocked.
	assert.Equal(t,
		[]grid.Cell{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}},
		g.Neighbors(grid.Cell{Row: 1, Col: 1}))

	// Corner: only down and right exist.
	assert.Equal(t,
		[]grid.Cell{{Row: 1, Col: 0}, {Row: 0, Col: 1}},
		g.Neighbors(grid.Cell{Row: 0, Col: 0}))
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New(4, nil)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		assert.Equal(t, i, g.Index(g.CellAt(i)))
	}
	assert.Equal(t, grid.Cell{Row: 2, Col: 1}, g.CellAt(9))
}

//----------------------------------------------------------------------------//
// ToGraph
//----------------------------------------------------------------------------//

func TestToGraph_Topology(t *testing.T) {
	g, err := grid.New(2, grid.NewCellSet(grid.Cell{Row: 1, Col: 1}))
	require.NoError(t, err)
	cg := g.ToGraph(true)

	assert.True(t, cg.Weighted())
	assert.Equal(t, []string{"0,0", "0,1", "1,0"}, cg.Vertices())
	assert.True(t, cg.HasEdge("0,0", "0,1"))
	assert.True(t, cg.HasEdge("0,1", "0,0"))
	assert.True(t, cg.HasEdge("0,0", "1,0"))
	assert.False(t, cg.HasEdge("0,1", "1,0"), "diagonal must not be linked")
	assert.False(t, cg.HasVertex("1,1"), "walls are not vertices")
	assert.Equal(t, 4, cg.EdgeCount(), "two adjacencies, two arcs each")

	for _, e := range cg.Edges() {
		assert.Equal(t, int64(1), e.Weight)
	}

	v, err := cg.Vertex("1,0")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Metadata["row"])
	assert.Equal(t, 0, v.Metadata["col"])
}

func TestToGraph_NeighborOrderMatchesGrid(t *testing.T) {
	g, err := grid.New(5, grid.NewCellSet(grid.Cell{Row: 2, Col: 3}))
	require.NoError(t, err)
	cg := g.ToGraph(false)
	assert.False(t, cg.Weighted())

	for i := 0; i < 25; i++ {
		c := g.CellAt(i)
		if !g.IsOpen(c) {
			continue
		}
		ids, err := cg.NeighborIDs(c.String())
		require.NoError(t, err)

		var want []string
		for _, n := range g.Neighbors(c) {
			want = append(want, n.String())
		}
		if len(want) == 0 {
			assert.Empty(t, ids)
			continue
		}
		assert.Equal(t, want, ids, "neighbor order of %s", c)
	}
}

func mustParse(t *testing.T, s string) grid.Cell {
	t.Helper()
	c, err := grid.ParseCell(s)
	require.NoError(t, err)
	return c
}
