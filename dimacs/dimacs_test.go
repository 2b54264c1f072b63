package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/dimacs"
)

const sample = `c sample graph
p sp 3 4
a 1 2 5
a 2 1 5
a 2 3 7
a 3 2 7
`

func TestParse_BuildsUndirectedGraphFromMirroredArcs(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader(sample), dimacs.Options{})
	require.NoError(t, err)

	require.Equal(t, 3, g.NumVertices())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(0, 2))

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(5), w)
}

func TestParse_RejectsNonShortestPathsProblem(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p max 3 4\n"), dimacs.Options{})
	require.Error(t, err)
}

func TestParse_NoArcsStillBuildsGraph(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p sp 4 0\n"), dimacs.Options{})
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
}

func TestWrite_ProblemLineEdgeCountMatchesArcLineCount(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 5))

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "p sp 4 4", lines[0])
	require.Len(t, lines, 1+4) // problem line + one arc line per directed adjacency-list entry
}

func TestWrite_RoundTripsThroughParse(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 2))

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g))

	got, err := dimacs.Parse(&buf, dimacs.Options{})
	require.NoError(t, err)

	require.Equal(t, g.NumVertices(), got.NumVertices())
	require.Equal(t, g.NumEdges(), got.NumEdges())
	for u := 0; u < g.NumVertices(); u++ {
		for v := u + 1; v < g.NumVertices(); v++ {
			w1, ok1 := g.Weight(u, v)
			w2, ok2 := got.Weight(u, v)
			require.Equal(t, ok1, ok2)
			require.Equal(t, w1, w2)
		}
	}
}
