package mst

import (
	"errors"

	"github.com/katalvlaran/thorupsssp/core"
)

// ErrNilGraph is returned when an Algorithm is asked to run on a nil graph.
var ErrNilGraph = errors.New("mst: graph must not be nil")

// Algorithm computes a minimum (msb-minimum, see package doc) spanning
// tree of a weighted, undirected graph.
type Algorithm interface {
	FindMST(g *core.Graph) (*core.Graph, error)
}

func msb(w int64) int {
	b := 0
	for w > 1 {
		w >>= 1
		b++
	}
	return b
}

// edge is a half of an undirected pair (u < v), collected once per
// underlying edge regardless of which endpoint's adjacency list it came
// from.
type edge struct {
	u, v int
	w    int64
}

func undirectedEdges(g *core.Graph) []edge {
	var edges []edge
	for u := 0; u < g.NumVertices(); u++ {
		for _, e := range g.Neighbors(u) {
			if u < e.To {
				edges = append(edges, edge{u: u, v: e.To, w: e.Weight})
			}
		}
	}
	return edges
}
