package dijkstraref

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/thorupsssp/core"
)

// ErrNilGraph is returned when ShortestPaths is called with a nil graph.
var ErrNilGraph = errors.New("dijkstraref: graph must not be nil")

// ErrInvalidSource is returned when source is not a vertex of the graph.
var ErrInvalidSource = errors.New("dijkstraref: source is not a vertex of the graph")

// ShortestPaths computes, for every vertex of g, its minimum distance from
// source. Unreachable vertices carry core.Inf. The returned predecessors
// slice maps each vertex to the vertex it was reached from on some
// shortest path, or -1 for source and for unreachable vertices.
func ShortestPaths(g *core.Graph, source int) (dist []int64, pred []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, nil, ErrInvalidSource
	}

	dist = make([]int64, n)
	pred = make([]int, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = core.Inf
		pred[v] = -1
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			if visited[e.To] {
				continue
			}
			newDist := core.SaturatingAdd64(dist[u], e.Weight)
			if newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			pred[e.To] = u
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, pred, nil
}

// nodeItem pairs a vertex with its current tentative distance from the
// source, for ordering within the priority queue.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Relaxation
// uses a lazy-decrease-key strategy: a shorter distance is pushed as a new
// entry, and stale entries for already-visited vertices are discarded when
// popped rather than removed from the heap in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
