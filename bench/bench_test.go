package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/bench"
	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/dijkstraref"
	"github.com/katalvlaran/thorupsssp/mst"
	"github.com/katalvlaran/thorupsssp/randgraph"
	"github.com/katalvlaran/thorupsssp/thorup"
)

func buildBenchGraph(tb testing.TB, n int) *core.Graph {
	tb.Helper()
	g, err := randgraph.Generate(n, 1000, randgraph.WithSeed(7), randgraph.WithEdgesPerVertex(4))
	require.NoError(tb, err)
	return g
}

// BenchmarkThorupQuery measures a single Thorup query on a pre-built 500
// vertex graph, excluding the one-time MST and data-structure setup.
func BenchmarkThorupQuery(b *testing.B) {
	g := buildBenchGraph(b, 500)

	engine := thorup.NewEngine()
	require.NoError(b, engine.ConstructMinimumSpanningTree(g, mst.KruskalMSB{}))
	require.NoError(b, engine.ConstructOtherDataStructures())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i > 0 {
			engine.CleanUpBetweenQueries()
		}
		_, _ = engine.FindShortestPaths(0)
	}
}

// BenchmarkThorupSetup measures constructing the msb-minimum spanning
// tree and the component-tree/unvisited data structures, the cost
// RepeatedQuerySeries amortizes over many queries.
func BenchmarkThorupSetup(b *testing.B) {
	g := buildBenchGraph(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine := thorup.NewEngine()
		_ = engine.ConstructMinimumSpanningTree(g, mst.KruskalMSB{})
		_ = engine.ConstructOtherDataStructures()
	}
}

// BenchmarkDijkstraRefQuery measures a single dijkstraref query on the
// same graph size as BenchmarkThorupQuery.
func BenchmarkDijkstraRefQuery(b *testing.B) {
	g := buildBenchGraph(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstraref.ShortestPaths(g, 0)
	}
}

func TestRepeatedQuerySeries_DistancesAgreeAcrossAllSources(t *testing.T) {
	g := buildBenchGraph(t, 60)

	report, err := bench.RepeatedQuerySeries(g, mst.KruskalMSB{}, 10)
	require.NoError(t, err)
	require.Len(t, report.ThorupQueries, 10)
	require.Len(t, report.DijkstraQueries, 10)
}

func TestRepeatedQuerySeries_ClampsToVertexCount(t *testing.T) {
	g := buildBenchGraph(t, 5)

	report, err := bench.RepeatedQuerySeries(g, mst.KruskalMSB{}, 1000)
	require.NoError(t, err)
	require.Len(t, report.ThorupQueries, 5)
}
