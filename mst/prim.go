package mst

import "github.com/katalvlaran/thorupsssp/core"

// Prim grows a minimum spanning tree outward from vertex 0, at each round
// scanning every not-yet-included vertex for its cheapest edge into the
// tree. O(n^2) time; no heap, matching the reference implementation's
// closest-vertex table.
type Prim struct{}

func (Prim) FindMST(g *core.Graph) (*core.Graph, error) {
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

	inTree := make([]bool, n)
	closestWeight := make([]int64, n)
	closestVertex := make([]int, n)
	for v := range closestWeight {
		closestWeight[v] = core.Inf
		closestVertex[v] = -1
	}

	relax := func(from int) {
		for _, e := range g.Neighbors(from) {
			if !inTree[e.To] && e.Weight < closestWeight[e.To] {
				closestWeight[e.To] = e.Weight
				closestVertex[e.To] = from
			}
		}
	}

	inTree[0] = true
	relax(0)

	for added := 0; added < n-1; added++ {
		best := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && closestVertex[v] != -1 {
				if best == -1 || closestWeight[v] < closestWeight[best] {
					best = v
				}
			}
		}
		if best == -1 {
			break // no reachable vertex outside the tree: input is not connected
		}

		if err := tree.AddEdge(best, closestVertex[best], closestWeight[best]); err != nil {
			return nil, err
		}
		inTree[best] = true
		relax(best)
	}

	return tree, nil
}
