package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/mst"
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

func totalWeight(t *testing.T, tree *core.Graph) int64 {
	t.Helper()

	var total int64
	for v := 0; v < tree.NumVertices(); v++ {
		for _, e := range tree.Neighbors(v) {
			if v < e.To {
				total += e.Weight
			}
		}
	}
	return total
}

func TestAlgorithms_AgreeOnTotalWeight(t *testing.T) {
	g := buildGraph(t)

	algorithms := map[string]mst.Algorithm{
		"kruskal_msb":    mst.KruskalMSB{},
		"prim":           mst.Prim{},
		"fredman_tarjan": mst.FredmanTarjan{},
	}

	var want int64 = -1
	for name, a := range algorithms {
		tree, err := a.FindMST(g)
		require.NoError(t, err, name)
		require.Equal(t, g.NumVertices()-1, countEdges(tree), name)

		w := totalWeight(t, tree)
		if want == -1 {
			want = w
		} else {
			require.Equal(t, want, w, name)
		}
	}
}

func countEdges(g *core.Graph) int {
	return g.NumEdges() / 2
}

func TestFindMST_NilGraph(t *testing.T) {
	_, err := mst.KruskalMSB{}.FindMST(nil)
	require.ErrorIs(t, err, mst.ErrNilGraph)
}

func TestFindMST_DisconnectedGraph(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	algorithms := map[string]mst.Algorithm{
		"kruskal_msb":    mst.KruskalMSB{},
		"prim":           mst.Prim{},
		"fredman_tarjan": mst.FredmanTarjan{},
	}
	for name, a := range algorithms {
		tree, err := a.FindMST(g)
		require.NoError(t, err, name)
		require.Less(t, countEdges(tree), g.NumVertices()-1, name)
		require.Equal(t, 1, countEdges(tree), name) // the one connected edge {0,1} still gets built
	}
}

func TestFindMST_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	tree, err := mst.FredmanTarjan{}.FindMST(g)
	require.NoError(t, err)
	require.Equal(t, 0, tree.NumEdges())
}
