package splitfindmin

// node is one container of a dlist, mirroring Gabow's reference
// implementation's doubly-linked Container<E>: cutting a list after a node,
// concatenating two lists, or inserting a list after a node are all O(1).
type node[E any] struct {
	item E
	prev *node[E]
	next *node[E]
}

// dlist is a doubly-linked list with a left sentinel, so the predecessor of
// the first real node is always non-nil.
type dlist[E any] struct {
	sentinel *node[E]
	last     *node[E]
}

func newDlist[E any]() *dlist[E] {
	s := &node[E]{}
	return &dlist[E]{sentinel: s, last: s}
}

func (l *dlist[E]) isEmpty() bool {
	return l.sentinel == l.last
}

// insertAfter inserts item after n, returning its new node.
func insertAfter[E any](n *node[E], item E) *node[E] {
	nn := &node[E]{item: item, prev: n, next: n.next}
	if n.next != nil {
		n.next.prev = nn
	}
	n.next = nn
	return nn
}

func (l *dlist[E]) add(item E) *node[E] {
	l.last = insertAfter(l.last, item)
	return l.last
}

func (l *dlist[E]) addFirst(item E) *node[E] {
	wasEmpty := l.isEmpty()
	n := insertAfter(l.sentinel, item)
	if wasEmpty {
		l.last = n
	}
	return n
}

// remove removes n from l, returning its predecessor. If n was l's last
// node, l.last moves to that predecessor.
func (l *dlist[E]) remove(n *node[E]) *node[E] {
	if n == l.last {
		l.last = n.prev
	}
	n.prev.next = n.next
	if n.next != nil {
		n.next.prev = n.prev
	}
	return n.prev
}

func (l *dlist[E]) insertAfter(n *node[E], item E) *node[E] {
	nn := insertAfter(n, item)
	if n == l.last {
		l.last = nn
	}
	return nn
}

// cutAfter splits l after n: n and everything before it stay in l; the
// remainder is returned as a new list.
func (l *dlist[E]) cutAfter(n *node[E]) *dlist[E] {
	if n == l.last {
		return newDlist[E]()
	}
	tail := &dlist[E]{sentinel: &node[E]{next: n.next}, last: l.last}
	n.next.prev = tail.sentinel
	n.next = nil
	l.last = n
	return tail
}

// insertListAfter splices other into l immediately after n, leaving other
// empty. Returns the last node of the spliced-in run, or n if other was
// empty.
func (l *dlist[E]) insertListAfter(n *node[E], other *dlist[E]) *node[E] {
	if other.isEmpty() {
		return n
	}
	first := other.sentinel.next
	if n.next != nil {
		n.next.prev = other.last
		other.last.next = n.next
	}
	n.next = first
	first.prev = n
	if n == l.last {
		l.last = other.last
	}
	last := other.last
	other.sentinel.next = nil
	other.last = other.sentinel
	return last
}

// concat appends other to l in O(1), leaving other logically consumed.
func (l *dlist[E]) concat(other *dlist[E]) {
	if other.isEmpty() {
		return
	}
	l.last.next = other.sentinel.next
	other.sentinel.next.prev = l.last
	l.last = other.last
}

// items materializes the list's contents in order. Used only by the
// bookkeeping passes (cost recomputation, pointer re-rooting) that must
// visit every element after a split; never on the structure's hot path.
func (l *dlist[E]) items() []E {
	var out []E
	for n := l.sentinel.next; n != nil; n = n.next {
		out = append(out, n.item)
	}
	return out
}
