package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, weighted: the configuration grid graphs use.
	s.g = core.NewGraph(core.WithWeighted())
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again does not change count or order.
	require.NoError(s.g.AddVertex("B"))
	require.NoError(s.g.AddVertex("A"))
	require.Equal(2, s.g.VertexCount())
	require.Equal([]string{"A", "B"}, s.g.Vertices())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestVertexMetadata() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A"))

	v, err := s.g.Vertex("A")
	require.NoError(err)
	require.NotNil(v.Metadata)
	v.Metadata["row"] = 3

	again, err := s.g.Vertex("A")
	require.NoError(err)
	require.Equal(3, again.Metadata["row"])

	_, err = s.g.Vertex("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Vertex("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeUndirected() {
	require := require.New(s.T())

	eid, err := s.g.AddEdge("A", "B", 1)
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected edge must be visible both ways")
	require.Equal(1, s.g.EdgeCount())

	// Either direction counts as the same pair.
	_, err = s.g.AddEdge("B", "A", 1)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
}

func (s *GraphSuite) TestAddEdgeValidation() {
	require := require.New(s.T())

	_, err := s.g.AddEdge("", "B", 1)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = s.g.AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	unweighted := core.NewGraph()
	_, err = unweighted.AddEdge("A", "B", 5)
	require.ErrorIs(err, core.ErrBadWeight)
	_, err = unweighted.AddEdge("A", "B", 0)
	require.NoError(err)

	looped := core.NewGraph(core.WithLoops())
	_, err = looped.AddEdge("A", "A", 0)
	require.NoError(err)
	ids, err := looped.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"A"}, ids)
}

func (s *GraphSuite) TestDirectedEdges() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("X", "Y", 0)
	require.NoError(err)
	require.True(g.HasEdge("X", "Y"))
	require.False(g.HasEdge("Y", "X"))

	// The reverse direction is a distinct pair in a directed graph.
	_, err = g.AddEdge("Y", "X", 0)
	require.NoError(err)

	out, err := g.NeighborIDs("Y")
	require.NoError(err)
	require.Equal([]string{"X"}, out)
}

func (s *GraphSuite) TestNeighborsInsertionOrder() {
	require := require.New(s.T())

	// Added in a deliberately non-lexicographic order.
	for _, to := range []string{"up", "down", "left", "right"} {
		_, err := s.g.AddEdge("c", to, 1)
		require.NoError(err)
	}

	ids, err := s.g.NeighborIDs("c")
	require.NoError(err)
	require.Equal([]string{"up", "down", "left", "right"}, ids)

	edges, err := s.g.Neighbors("c")
	require.NoError(err)
	require.Len(edges, 4)
	require.Equal("e1", edges[0].ID)
	require.Equal("e4", edges[3].ID)

	back, err := s.g.NeighborIDs("left")
	require.NoError(err)
	require.Equal([]string{"c"}, back)

	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Neighbors("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestIsolatedVertexHasNoNeighbors() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("lonely"))

	ids, err := s.g.NeighborIDs("lonely")
	require.NoError(err)
	require.Empty(ids)
}

func (s *GraphSuite) TestEdgesOrder() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B", 1)
	_, _ = s.g.AddEdge("B", "C", 2)
	_, _ = s.g.AddEdge("A", "C", 5)

	edges := s.g.Edges()
	require.Len(edges, 3)
	require.Equal([]int64{1, 2, 5}, []int64{edges[0].Weight, edges[1].Weight, edges[2].Weight})
}

func (s *GraphSuite) TestUnweightedView() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B", 4)
	_, _ = s.g.AddEdge("B", "C", 7)

	view := core.UnweightedView(s.g)
	require.False(view.Weighted())
	require.True(s.g.Weighted(), "source must stay weighted")
	require.Equal(s.g.Vertices(), view.Vertices())

	for _, e := range view.Edges() {
		require.Zero(e.Weight)
	}
	for _, e := range s.g.Edges() {
		require.NotZero(e.Weight, "source weights must be untouched")
	}

	// IDs continue after the source counter.
	eid, err := view.AddEdge("C", "D", 0)
	require.NoError(err)
	require.Equal("e3", eid)
	require.False(s.g.HasVertex("D"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
