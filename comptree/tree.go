package comptree

import (
	"errors"
	"math"

	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/unionfind"
)

// ErrNotATree is returned by Build when the supplied graph does not have
// exactly n-1 undirected edges, i.e. is not a spanning tree over its
// vertex set.
var ErrNotATree = errors.New("comptree: graph is not a spanning tree")

// sentinelMSB is used as the "next edge's msb" for the final edge of the
// sweep. It is larger than the msb of any weight a *core.Graph can carry,
// which forces Build's last bucket to flush.
const sentinelMSB = 63

// Tree is a component tree built by Build: leaves are the n vertices of
// the spanning tree it was built from, internal nodes are the components
// formed as the tree's edges are swept in order of increasing
// most-significant-bit of weight.
type Tree struct {
	leaves        []*Node
	internalNodes []*Node
	root          *Node
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Leaf returns the leaf node representing vertex v.
func (t *Tree) Leaf(v int) *Node {
	return t.leaves[v]
}

// NumVertices returns the number of leaves in the tree.
func (t *Tree) NumVertices() int {
	return len(t.leaves)
}

// ResetVisited marks every node of the tree as unvisited again and
// restores every node's unvisited-vertex count to its initial value,
// preparing the tree for another shortest-paths query.
func (t *Tree) ResetVisited() {
	if t.root != nil {
		resetVisited(t.root)
	}
}

func resetVisited(node *Node) {
	node.NumUnvisitedVertices = node.NumUnvisitedVerticesInitial
	node.Visited = false

	for _, child := range node.Children {
		resetVisited(child)
	}
}

func newTree(n int) *Tree {
	t := &Tree{leaves: make([]*Node, n)}
	for v := 0; v < n; v++ {
		t.leaves[v] = &Node{Index: v}
	}
	return t
}

func (t *Tree) newInternalNode() *Node {
	node := &Node{Index: len(t.internalNodes)}
	t.internalNodes = append(t.internalNodes, node)
	return node
}

type spanningEdge struct {
	u, v int
	w    int64
}

func msb(w int64) int {
	b := 0
	for w > 1 {
		w >>= 1
		b++
	}
	return b
}

func collectEdgesAscendingByMSB(tree *core.Graph) []spanningEdge {
	var edges []spanningEdge
	for u := 0; u < tree.NumVertices(); u++ {
		for _, e := range tree.Neighbors(u) {
			if u < e.To {
				edges = append(edges, spanningEdge{u: u, v: e.To, w: e.Weight})
			}
		}
	}

	// bucket sort by msb, stable: edges already sharing a bucket keep their
	// discovery order, which only matters for determinism of Build's
	// internal node numbering, not for correctness.
	buckets := make(map[int][]spanningEdge)
	maxBucket := 0
	for _, e := range edges {
		b := msb(e.w)
		buckets[b] = append(buckets[b], e)
		if b > maxBucket {
			maxBucket = b
		}
	}

	sorted := make([]spanningEdge, 0, len(edges))
	for b := 0; b <= maxBucket; b++ {
		sorted = append(sorted, buckets[b]...)
	}
	return sorted
}

// Build constructs the component tree of a minimum spanning tree bucketed
// by most-significant-bit of weight (see package mst's KruskalMSB). It
// runs Algorithm G: a union-find sweep of the tree's edges grouped by
// msb(weight), allocating, at the moment a msb level ends, one internal
// Node per component that an edge of that level merged into.
func Build(tree *core.Graph) (*Tree, error) {
	if tree == nil {
		return nil, ErrNotATree
	}

	n := tree.NumVertices()
	t := newTree(n)
	if n <= 1 {
		if n == 1 {
			t.root = t.leaves[0]
		}
		return t, nil
	}

	edges := collectEdgesAscendingByMSB(tree)
	if len(edges) != n-1 {
		return nil, ErrNotATree
	}

	uf := unionfind.NewForest()
	ufNodes := make([]*unionfind.Node, n)
	for v := 0; v < n; v++ {
		ufNodes[v] = uf.MakeSet(v)
	}

	c := make([]*Node, n) // current tree node representing root-slot v
	weightSum := make([]int64, n)
	for v := 0; v < n; v++ {
		c[v] = t.leaves[v]
	}

	var pending []int
	pendingSeen := make(map[int]bool)

	flush := func(triggerMSB int) {
		newRepr := make(map[int]*Node, len(pending))
		var order []int
		for _, v := range pending {
			r := unionfind.Find(ufNodes[v]).Item()
			if _, ok := newRepr[r]; !ok {
				node := t.newInternalNode()
				node.Level = triggerMSB + 1
				newRepr[r] = node
				order = append(order, r)
			}
		}

		for _, v := range pending {
			r := unionfind.Find(ufNodes[v]).Item()
			c[v].setParent(newRepr[r])
		}

		for _, r := range order {
			node := newRepr[r]
			scaled := float64(weightSum[r]) / math.Pow(2, float64(triggerMSB))
			node.Delta = int(math.Ceil(scaled))
			c[r] = node
		}

		pending = pending[:0]
		pendingSeen = make(map[int]bool)
	}

	for i, e := range edges {
		ru := unionfind.Find(ufNodes[e.u]).Item()
		rv := unionfind.Find(ufNodes[e.v]).Item()
		if !pendingSeen[ru] {
			pendingSeen[ru] = true
			pending = append(pending, ru)
		}
		if !pendingSeen[rv] {
			pendingSeen[rv] = true
			pending = append(pending, rv)
		}

		isLast := i == len(edges)-1

		newWeight := weightSum[ru] + weightSum[rv] + e.w

		unionfind.Union(ufNodes[ru], ufNodes[rv])
		root := unionfind.Find(ufNodes[ru]).Item()
		weightSum[root] = newWeight

		nextMSB := sentinelMSB
		if !isLast {
			nextMSB = msb(edges[i+1].w)
		}
		if msb(e.w) < nextMSB {
			flush(msb(e.w))
		}
	}

	t.root = c[unionfind.Find(ufNodes[0]).Item()]
	return t, nil
}
