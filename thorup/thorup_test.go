package thorup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/mst"
	"github.com/katalvlaran/thorupsssp/thorup"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 4))
	require.NoError(t, g.AddEdge(2, 3, 5))
	require.NoError(t, g.AddEdge(3, 4, 6))

	return g
}

func prepareEngine(t *testing.T, g *core.Graph) *thorup.Engine {
	t.Helper()

	e := thorup.NewEngine()
	require.NoError(t, e.ConstructMinimumSpanningTree(g, mst.KruskalMSB{}))
	require.NoError(t, e.ConstructOtherDataStructures())

	return e
}

func TestFindShortestPaths_MatchesKnownDistances(t *testing.T) {
	e := prepareEngine(t, buildGraph(t))

	d, err := e.FindShortestPaths(0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 3, 6, 12}, d)
}

func TestFindShortestPaths_SourceDistanceIsZero(t *testing.T) {
	e := prepareEngine(t, buildGraph(t))

	d, err := e.FindShortestPaths(2)
	require.NoError(t, err)
	require.Equal(t, int64(0), d[2])
}

func TestFindShortestPaths_InvalidSource(t *testing.T) {
	e := prepareEngine(t, buildGraph(t))

	_, err := e.FindShortestPaths(99)
	require.ErrorIs(t, err, thorup.ErrInvalidSource)
}

func TestCleanUpBetweenQueries_RepeatsTheSameResult(t *testing.T) {
	e := prepareEngine(t, buildGraph(t))

	first, err := e.FindShortestPaths(0)
	require.NoError(t, err)

	e.CleanUpBetweenQueries()

	second, err := e.FindShortestPaths(0)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFindShortestPaths_DifferentSourcesOnSamePreparedGraph(t *testing.T) {
	e := prepareEngine(t, buildGraph(t))

	d0, err := e.FindShortestPaths(0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 3, 6, 12}, d0)

	e.CleanUpBetweenQueries()

	d4, err := e.FindShortestPaths(4)
	require.NoError(t, err)
	require.Equal(t, []int64{12, 10, 11, 6, 0}, d4)
}

func TestFindShortestPaths_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	e := thorup.NewEngine()
	require.NoError(t, e.ConstructMinimumSpanningTree(g, mst.Prim{}))
	require.NoError(t, e.ConstructOtherDataStructures())

	d, err := e.FindShortestPaths(0)
	require.NoError(t, err)
	require.Equal(t, []int64{0}, d)
}

func TestConstructOtherDataStructures_BeforeMST(t *testing.T) {
	e := thorup.NewEngine()
	require.ErrorIs(t, e.ConstructOtherDataStructures(), thorup.ErrNotPrepared)
}

func TestConstructMinimumSpanningTree_NilGraph(t *testing.T) {
	e := thorup.NewEngine()
	require.ErrorIs(t, e.ConstructMinimumSpanningTree(nil, mst.Prim{}), thorup.ErrNilGraph)
}
