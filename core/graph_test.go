package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/core"
)

func TestNewGraph_InvalidVertexCount(t *testing.T) {
	_, err := core.NewGraph(0)
	require.ErrorIs(t, err, core.ErrInvalidVertexCount)
}

func TestAddEdge_Undirected(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 5))
	require.Equal(t, 2, g.NumEdges())

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	require.EqualValues(t, 5, w)

	w, ok = g.Weight(1, 0)
	require.True(t, ok)
	require.EqualValues(t, 5, w)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 0, 1), core.ErrSelfLoop)
}

func TestAddEdge_RejectsNonPositiveWeight(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 1, 0), core.ErrNonPositiveWeight)
	require.ErrorIs(t, g.AddEdge(0, 1, -3), core.ErrNonPositiveWeight)
}

func TestAddEdge_RejectsParallelEdge(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 1))
	require.ErrorIs(t, g.AddEdge(0, 1, 2), core.ErrParallelEdge)
	require.ErrorIs(t, g.AddEdge(1, 0, 2), core.ErrParallelEdge)
}

func TestAddEdge_RejectsOutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 5, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
}

func TestAddDirectedEdge_OnlyOneDirection(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddDirectedEdge(0, 1, 7))
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))
	require.Equal(t, 1, g.NumEdges())
}

func TestNeighbors_PreservesInsertionOrder(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	require.NoError(t, g.AddDirectedEdge(0, 3, 1))
	require.NoError(t, g.AddDirectedEdge(0, 1, 1))
	require.NoError(t, g.AddDirectedEdge(0, 2, 1))

	neighbors := g.Neighbors(0)
	require.Len(t, neighbors, 3)
	require.Equal(t, 3, neighbors[0].To)
	require.Equal(t, 1, neighbors[1].To)
	require.Equal(t, 2, neighbors[2].To)
}

func TestSaturatingAdd64(t *testing.T) {
	require.EqualValues(t, 8, core.SaturatingAdd64(3, 5))
	require.Equal(t, core.Inf, core.SaturatingAdd64(core.Inf, 1))
	require.Equal(t, core.Inf, core.SaturatingAdd64(core.Inf-1, 2))
}
