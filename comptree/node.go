package comptree

import (
	"container/list"

	"github.com/katalvlaran/thorupsssp/core"
)

// Node is one node of a component Tree: a leaf representing a single
// graph vertex, or an internal node representing a component formed by
// merging its children's components at a particular msb level.
type Node struct {
	Parent   *Node
	Children []*Node

	// Index is the graph vertex index for a leaf; for an internal node it
	// is an arbitrary, Tree-unique identifier with no meaning outside
	// bookkeeping.
	Index int

	// Level is the bit level i this node's component was formed at: the
	// most-significant-bit of the triggering msb-MST edge, plus one. Zero
	// for leaves.
	Level int

	// Delta is the bucket count of this node, computed from the summed
	// internal edge weight of its component scaled down by 2^(Level-1).
	Delta int

	// IX0, IX8 bound the bucket index range open while this node is
	// expanded: buckets span [IX0, IX8] inclusive. IX tracks the next
	// bucket to scan during Algorithm E.
	IX0, IX int
	IX8     int

	Visited bool

	NumUnvisitedVertices        int
	NumUnvisitedVerticesInitial int

	// LastUIndex is the index of this node's rightmost leaf in a
	// depth-first numbering of the tree, set by package unvisited when it
	// builds the vertex-to-split-findmin-element mapping.
	LastUIndex int

	buckets           []*list.List
	bucketIndexOffset int

	containingBucket *list.List
	bucketElem       *list.Element
}

// IsLeaf reports whether this node represents a single graph vertex.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) setParent(parent *Node) {
	n.Parent = parent
	parent.Children = append(parent.Children, n)

	if n.IsLeaf() {
		parent.NumUnvisitedVertices++
		parent.NumUnvisitedVerticesInitial++
	} else {
		parent.NumUnvisitedVertices += n.NumUnvisitedVertices
		parent.NumUnvisitedVerticesInitial += n.NumUnvisitedVerticesInitial
	}
}

// InitializeBuckets allocates this node's bucket array to cover [IX0, IX8]
// inclusive. Must be called once, after IX0/IX8 are set, before Bucket.
func (n *Node) InitializeBuckets() {
	n.bucketIndexOffset = n.IX0
	n.buckets = make([]*list.List, n.IX8-n.IX0+1)
	for b := range n.buckets {
		n.buckets[b] = list.New()
	}
}

// Bucket inserts child into this node's bucket at the given absolute
// index. index must fall within [IX0, IX8]: Delta is sized so that every
// index Algorithm D ever buckets a child at does, and an index outside
// that range means the bucket count or a caller's index arithmetic is
// wrong, not that the child has nowhere to go.
func (n *Node) Bucket(child *Node, index int) {
	b := index - n.bucketIndexOffset
	core.Assert("comptree", b >= 0 && b < len(n.buckets), "bucket index out of [IX0, IX8] range")

	child.containingBucket = n.buckets[b]
	child.bucketElem = n.buckets[b].PushBack(child)
}

// GetBucket returns the bucket at the given absolute index.
func (n *Node) GetBucket(index int) *list.List {
	return n.buckets[index-n.bucketIndexOffset]
}

// RemoveFromParentBucket removes this node from whichever bucket
// currently holds it.
func (n *Node) RemoveFromParentBucket() {
	n.containingBucket.Remove(n.bucketElem)
}

// MoveToBucket removes this node from its current bucket, if any, then
// inserts it into owner's bucket at the given absolute index.
func (n *Node) MoveToBucket(owner *Node, index int) {
	if n.containingBucket != nil {
		n.containingBucket.Remove(n.bucketElem)
	}
	owner.Bucket(n, index)
}
