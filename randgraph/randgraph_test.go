package randgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/randgraph"
)

func isConnected(t *testing.T, edges func(v int) []int, n int) bool {
	t.Helper()
	if n == 0 {
		return true
	}
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range edges(v) {
			if !seen[w] {
				seen[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count == n
}

func TestGenerate_HamiltonianPathAloneIsConnected(t *testing.T) {
	g, err := randgraph.Generate(10, 100, randgraph.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 10, g.NumVertices())

	connected := isConnected(t, func(v int) []int {
		var out []int
		for _, e := range g.Neighbors(v) {
			out = append(out, e.To)
		}
		return out
	}, 10)
	require.True(t, connected)
}

func TestGenerate_IsDeterministicWithSameSeed(t *testing.T) {
	g1, err := randgraph.Generate(20, 50, randgraph.WithSeed(42), randgraph.WithEdgesPerVertex(3))
	require.NoError(t, err)
	g2, err := randgraph.Generate(20, 50, randgraph.WithSeed(42), randgraph.WithEdgesPerVertex(3))
	require.NoError(t, err)

	require.Equal(t, g1.NumEdges(), g2.NumEdges())
	for i := 0; i < 20; i++ {
		for j := i + 1; j < 20; j++ {
			w1, ok1 := g1.Weight(i, j)
			w2, ok2 := g2.Weight(i, j)
			require.Equal(t, ok1, ok2)
			require.Equal(t, w1, w2)
		}
	}
}

func TestGenerate_WeightsWithinRange(t *testing.T) {
	const maxWeight = 7
	g, err := randgraph.Generate(15, maxWeight, randgraph.WithSeed(3), randgraph.WithProbability(0.5))
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		for j := i + 1; j < 15; j++ {
			w, ok := g.Weight(i, j)
			if !ok {
				continue
			}
			require.GreaterOrEqual(t, w, int64(1))
			require.LessOrEqual(t, w, int64(maxWeight))
		}
	}
}

func TestGenerate_EdgesPerVertexAddsMoreEdgesThanBareProbabilityZero(t *testing.T) {
	sparse, err := randgraph.Generate(30, 10, randgraph.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, 58, sparse.NumEdges()) // 29 path edges, two directed arcs each

	denser, err := randgraph.Generate(30, 10, randgraph.WithSeed(9), randgraph.WithEdgesPerVertex(4))
	require.NoError(t, err)
	require.Greater(t, denser.NumEdges(), sparse.NumEdges())
}

func TestGenerate_SingleVertex(t *testing.T) {
	g, err := randgraph.Generate(1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
}

func TestGenerate_InvalidVertexCount(t *testing.T) {
	_, err := randgraph.Generate(-1, 10)
	require.Error(t, err)
}
