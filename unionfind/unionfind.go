package unionfind

// Node is one element of a disjoint-set forest. Its zero value is not
// usable; obtain Nodes only through Forest.MakeSet.
type Node struct {
	parent *Node
	item   int
	size   int
}

// Item returns the item this node was created with via MakeSet. Note that
// after a Union, Item still reflects the node's own original payload, not
// the payload of whichever node ended up as the set's root.
func (n *Node) Item() int {
	return n.item
}

// Forest is a disjoint-set forest over nodes created by MakeSet.
type Forest struct {
	nodes []*Node
}

// NewForest returns an empty forest. Use MakeSet to populate it.
func NewForest() *Forest {
	return &Forest{}
}

// MakeSet creates a new singleton set containing item and returns its node.
func (f *Forest) MakeSet(item int) *Node {
	n := &Node{item: item, size: 1}
	n.parent = n
	f.nodes = append(f.nodes, n)

	return n
}

// Find returns the canonical representative of the set containing n,
// compressing the path from n to the root so that every node visited now
// points directly at the root.
func Find(n *Node) *Node {
	root := n
	for root.parent != root {
		root = root.parent
	}

	for n != root {
		next := n.parent
		n.parent = root
		n = next
	}

	return root
}

// Union merges the sets containing a and b, attaching the smaller subtree
// under the larger one (union-by-size). Returns the resulting root. If a
// and b are already in the same set, Union is a no-op and returns that
// set's root.
func Union(a, b *Node) *Node {
	ra, rb := Find(a), Find(b)
	if ra == rb {
		return ra
	}

	if ra.size < rb.size {
		ra, rb = rb, ra
	}

	rb.parent = ra
	ra.size += rb.size

	return ra
}
