package unvisited

import (
	"github.com/katalvlaran/thorupsssp/comptree"
	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/splitfindmin"
)

// Structure couples a component tree's leaves to the elements of a
// split-findmin structure, one element per vertex, in depth-first order.
type Structure struct {
	indexOfVertex []int
	containers    []*splitfindmin.Element
}

// New builds an unvisited data structure for a graph with n vertices,
// using the given component tree and an empty split-findmin structure sf.
// sf must not have had Add or Initialize called on it yet; New calls both.
func New(n int, tree *comptree.Tree, sf *splitfindmin.Structure) *Structure {
	u := &Structure{indexOfVertex: make([]int, n)}
	initializeMapping(tree.Root(), 0, u.indexOfVertex)

	u.containers = make([]*splitfindmin.Element, n)
	for i := 0; i < n; i++ {
		u.containers[i] = sf.Add(core.Inf)
	}
	sf.Initialize()

	return u
}

// initializeMapping assigns consecutive split-findmin indices to node's
// leaves in depth-first order, starting at index, and records each
// internal node's rightmost leaf index in its LastUIndex field. It returns
// the next unused index.
func initializeMapping(node *comptree.Node, index int, indexOfVertex []int) int {
	if node.IsLeaf() {
		indexOfVertex[node.Index] = index
		node.LastUIndex = index
		return index + 1
	}

	next := index
	for _, child := range node.Children {
		next = initializeMapping(child, next, indexOfVertex)
	}
	node.LastUIndex = next - 1

	return next
}

// MinDMinus returns the minimum super-distance among v and all of its
// still-unvisited descendants, or -1 if none of them has a finite
// distance yet.
func (u *Structure) MinDMinus(v *comptree.Node) int64 {
	cost := u.containers[v.LastUIndex].ListCost()
	if cost >= core.Inf {
		return -1
	}
	return cost
}

// DecreaseD lowers the super-distance of vertex v to newD, if newD is
// smaller than v's current distance.
func (u *Structure) DecreaseD(v int, newD int64) {
	u.containers[u.indexOfVertex[v]].DecreaseCost(newD)
}

// D returns the current super-distance of vertex v.
func (u *Structure) D(v int) int64 {
	return u.containers[u.indexOfVertex[v]].Cost()
}

// RootAbove returns the highest ancestor of leaf w that has not yet been
// marked visited: the root of the unvisited subtree w currently belongs
// to.
func (u *Structure) RootAbove(tree *comptree.Tree, w int) *comptree.Node {
	current := tree.Leaf(w)
	for !current.Parent.Visited {
		current = current.Parent
	}

	return current
}

// DeleteRoot removes v as a root of the unvisited part of the component
// tree: every child of v but the last is split off into its own
// split-findmin list, becoming a new root.
func (u *Structure) DeleteRoot(v *comptree.Node) {
	last := len(v.Children) - 1
	for i, child := range v.Children {
		if i == last {
			continue
		}
		u.containers[child.LastUIndex].Split()
	}
}
