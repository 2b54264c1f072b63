package mst

import (
	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/unionfind"
)

// KruskalMSB computes an msb-minimum spanning tree by bucket-sorting edges
// on the most-significant-bit of their weight and sweeping them with a
// union-find structure, stopping as soon as n-1 tree edges have been
// found. Runs in O(n + m) time given weights bounded by a known maximum.
//
// Grounded on the reference implementation's modified Kruskal: edges never
// need a comparison sort, only a bucket sort keyed by msb(weight).
type KruskalMSB struct{}

func (KruskalMSB) FindMST(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.NumVertices()
	tree, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return tree, nil
	}

	forest := unionfind.NewForest()
	nodes := make([]*unionfind.Node, n)
	for v := 0; v < n; v++ {
		nodes[v] = forest.MakeSet(v)
	}

	edges := undirectedEdges(g)

	maxBucket := 0
	for _, e := range edges {
		if b := msb(e.w); b > maxBucket {
			maxBucket = b
		}
	}
	buckets := make([][]edge, maxBucket+1)
	for _, e := range edges {
		b := msb(e.w)
		buckets[b] = append(buckets[b], e)
	}

	added := 0
	for _, bucket := range buckets {
		for _, e := range bucket {
			if added >= n-1 {
				break
			}
			ru, rv := unionfind.Find(nodes[e.u]), unionfind.Find(nodes[e.v])
			if ru == rv {
				continue
			}
			if err := tree.AddEdge(e.u, e.v, e.w); err != nil {
				return nil, err
			}
			unionfind.Union(ru, rv)
			added++
		}
	}

	return tree, nil
}
