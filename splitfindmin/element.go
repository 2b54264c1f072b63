package splitfindmin

import "github.com/katalvlaran/thorupsssp/core"

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Element is a handle returned by Structure.Add. It identifies one costed
// position in the structure; callers never read a payload back from it,
// only its cost and the list it currently belongs to.
type Element struct {
	cost int64

	// superelement is set while this element participates in a superelement
	// one level up; nil for a leftover directly owned by a Structure.
	superelement *Superelement

	// containingList is set iff this element is a leftover, i.e. sits
	// directly in some Structure's singletonElements list.
	containingList *Structure

	// wraps is non-nil when this Element lives inside a sublist and stands
	// in for a Superelement one level up (see Structure.prependElement /
	// appendElement). nil for elements representing caller items.
	wraps *Superelement

	containingContainer                  *node[*Element]
	containingContainerSingletonElements *node[*Element]
}

// IsSingleton reports whether this element is not currently part of any
// non-singleton superelement-in-a-sublist chain, i.e. DecreaseCost/Split on
// it terminate in O(1) extra work at this level rather than recursing down.
func (e *Element) IsSingleton() bool {
	return e.containingList != nil || (e.superelement != nil && e.superelement.IsSingleton())
}

// Cost returns this element's own cost.
func (e *Element) Cost() int64 {
	return e.cost
}

// ListCost returns the running minimum cost of the list this element
// currently belongs to.
func (e *Element) ListCost() int64 {
	if e.IsSingleton() {
		if e.containingList != nil {
			return e.containingList.cost
		}
		return e.superelement.containingList.cost
	}
	return e.superelement.containingSublist.Cost()
}

// DecreaseCost lowers this element's cost to min(current, newCost),
// propagating the new minimum up through every level of the recursive
// hierarchy this element participates in. Returns the list this element
// (directly, or through one or more superelements) now belongs to.
func (e *Element) DecreaseCost(newCost int64) *Structure {
	if e.IsSingleton() {
		e.cost = min64(e.cost, newCost)

		if e.superelement != nil {
			e.superelement.cost = min64(e.superelement.cost, newCost)
			e.superelement.containingList.cost = min64(e.superelement.containingList.cost, newCost)
			return e.superelement.containingList
		}

		e.containingList.cost = min64(e.containingList.cost, newCost)
		return e.containingList
	}

	sublist := e.superelement.elementInSublist.DecreaseCost(newCost)
	e.superelement.cost = min64(e.superelement.cost, newCost)
	e.cost = min64(e.cost, newCost)

	list := sublist.containingList
	list.cost = min64(list.cost, newCost)
	return list
}

// Split replaces the list containing this element by two lists: everything
// up to and including this element, and everything after. Whichever
// sub-hierarchy the cut passes through is reinitialized from scratch.
// Returns the (second) list of everything after this element.
func (e *Element) Split() *Structure {
	var l1, l2 *Structure

	if se := e.superelement; se != nil {
		core.Assert("splitfindmin",
			se.IsSingleton() == (se.elementInSublist == nil),
			"superelement must be either a singleton or wrapped by a sublist element, not both or neither")
	}

	switch {
	case e.IsSingleton() && e.superelement == nil:
		l1, l2 = e.splitLeftover()
	case e.IsSingleton():
		l1, l2 = e.splitSingletonSuperelement()
	default:
		l1, l2 = e.splitNestedSuperelement()
	}

	l2.elements = l1.elements.cutAfter(e.containingContainer)
	l2.containingList = l1.containingList

	l1.cost = core.Inf
	for _, el := range l1.singletonElements.items() {
		l1.cost = min64(l1.cost, el.cost)
	}
	for _, se := range l1.singletonSuperelements.items() {
		l1.cost = min64(l1.cost, se.cost)
	}
	for _, sub := range l1.sublists.items() {
		l1.cost = min64(l1.cost, sub.cost)
	}

	l2.cost = core.Inf
	for _, el := range l2.singletonElements.items() {
		el.containingList = l2
		l2.cost = min64(l2.cost, el.cost)
	}
	for _, se := range l2.singletonSuperelements.items() {
		se.containingList = l2
		l2.cost = min64(l2.cost, se.cost)
	}
	for _, sub := range l2.sublists.items() {
		deepSetPointers(sub, l2)
		l2.cost = min64(l2.cost, sub.cost)
	}

	return l2
}

// splitLeftover handles the case where this element is a leftover directly
// owned by a Structure (no superelement at all).
func (e *Element) splitLeftover() (l1, l2 *Structure) {
	l1 = e.containingList
	l2 = NewStructure(l1.ackermann, l1.level)
	l2.singletonElements = l1.singletonElements.cutAfter(e.containingContainerSingletonElements)

	cur := e.containingContainer.prev
	found := false
	for cur != l1.elements.sentinel {
		if se := cur.item.superelement; se != nil && se.IsSingleton() {
			l2.singletonSuperelements = l1.singletonSuperelements.cutAfter(se.containingContainerSingletonSuperelements)
			found = true
			break
		}
		cur = cur.prev
	}
	if !found {
		l2.singletonSuperelements = l1.singletonSuperelements
		l1.singletonSuperelements = newDlist[*Superelement]()
	}

	cur = e.containingContainer.prev
	found = false
	for cur != l1.elements.sentinel {
		if se := cur.item.superelement; se != nil && !se.IsSingleton() {
			l2.sublists = l1.sublists.cutAfter(se.containingSublist.containingContainerSublists)
			found = true
			break
		}
		cur = cur.prev
	}
	if !found {
		l2.sublists = l1.sublists
		l1.sublists = newDlist[*Structure]()
	}
	return l1, l2
}

// splitSingletonSuperelement handles the case where this element is
// contained by a superelement that is itself a singleton (directly owned by
// a Structure, not nested in a sublist).
func (e *Element) splitSingletonSuperelement() (l1, l2 *Structure) {
	se := e.superelement
	l1 = se.containingList
	l2 = NewStructure(l1.ackermann, l1.level)

	if e == se.last {
		cur := e.containingContainer.prev
		found := false
		for cur != l1.elements.sentinel {
			el := cur.item
			if el.IsSingleton() && el.superelement == nil {
				l2.singletonElements = l1.singletonElements.cutAfter(el.containingContainerSingletonElements)
				found = true
				break
			}
			cur = cur.prev
		}
		if !found {
			l2.singletonElements = l1.singletonElements
			l1.singletonElements = newDlist[*Element]()
		}

		l2.singletonSuperelements = l1.singletonSuperelements.cutAfter(se.containingContainerSingletonSuperelements)

		cur = e.containingContainer.prev
		found = false
		for cur != l1.elements.sentinel {
			if x := cur.item.superelement; x != nil && !x.IsSingleton() {
				l2.sublists = l1.sublists.cutAfter(x.containingSublist.containingContainerSublists)
				found = true
				break
			}
			cur = cur.prev
		}
		if !found {
			l2.sublists = l1.sublists
			l1.sublists = newDlist[*Structure]()
		}
		return l1, l2
	}

	var lastSingletonElement *node[*Element]
	cur := e.containingContainer.prev
	found := false
	for cur != l1.elements.sentinel {
		el := cur.item
		if el.IsSingleton() && el.superelement == nil {
			lastSingletonElement = el.containingContainerSingletonElements
			found = true
			break
		}
		cur = cur.prev
	}
	if !found {
		lastSingletonElement = l1.singletonElements.sentinel
	}

	lastSingletonSuperelement := se.containingContainerSingletonSuperelements

	var lastSublist *node[*Structure]
	cur = e.containingContainer.prev
	found = false
	for cur != l1.elements.sentinel {
		if x := cur.item.superelement; x != nil && !x.IsSingleton() {
			lastSublist = x.containingSublist.containingContainerSublists
			found = true
			break
		}
		cur = cur.prev
	}
	if !found {
		lastSublist = l1.sublists.sentinel
	}

	lastSingletonSuperelement = l1.singletonSuperelements.remove(lastSingletonSuperelement)

	newSE, newSS, newSL := newDlist[*Element](), newDlist[*Superelement](), newDlist[*Structure]()
	l1.initializeHead(se.first.containingContainer, e.containingContainer, newSE, newSS, newSL)

	lastSingletonElement = l1.singletonElements.insertListAfter(lastSingletonElement, newSE)
	lastSingletonSuperelement = l1.singletonSuperelements.insertListAfter(lastSingletonSuperelement, newSS)
	lastSublist = l1.sublists.insertListAfter(lastSublist, newSL)

	l2.singletonElements = l1.singletonElements.cutAfter(lastSingletonElement)
	l2.singletonSuperelements = l1.singletonSuperelements.cutAfter(lastSingletonSuperelement)
	l2.sublists = l1.sublists.cutAfter(lastSublist)

	newSE, newSS, newSL = newDlist[*Element](), newDlist[*Superelement](), newDlist[*Structure]()
	l1.initializeTail(e.containingContainer.next, se.last.containingContainer, newSE, newSS, newSL)

	newSE.concat(l2.singletonElements)
	newSS.concat(l2.singletonSuperelements)
	newSL.concat(l2.sublists)

	l2.singletonElements = newSE
	l2.singletonSuperelements = newSS
	l2.sublists = newSL
	return l1, l2
}

// splitNestedSuperelement handles the case where this element is contained
// by a superelement that is itself an element of a sublist one level down.
func (e *Element) splitNestedSuperelement() (l1, l2 *Structure) {
	se := e.superelement
	l1 = se.containingSublist.containingList
	l2 = NewStructure(l1.ackermann, l1.level)

	containerToInsertAfter := se.containingSublist.containingContainerSublists

	subl3 := se.elementInSublist.Split()
	for _, el := range subl3.elements.items() {
		el.wraps.containingSublist = subl3
	}

	var subl2 *Structure
	predContainer := se.elementInSublist.containingContainer.prev
	if predContainer.item != nil {
		subl2 = predContainer.item.Split()
		for _, el := range subl2.elements.items() {
			el.wraps.containingSublist = subl2
		}
	}

	if subl2 != nil {
		containerToInsertAfter = l1.sublists.insertAfter(containerToInsertAfter, subl2)
		subl2.containingContainerSublists = containerToInsertAfter
		subl2.containingList = l1
	}
	containerToInsertAfter = l1.sublists.insertAfter(containerToInsertAfter, subl3)
	subl3.containingContainerSublists = containerToInsertAfter
	subl3.containingList = l1

	if e == se.last {
		cur := e.containingContainer.prev
		found := false
		for cur != l1.elements.sentinel {
			el := cur.item
			if el.IsSingleton() && el.superelement == nil {
				l2.singletonElements = l1.singletonElements.cutAfter(el.containingContainerSingletonElements)
				found = true
				break
			}
			cur = cur.prev
		}
		if !found {
			l2.singletonElements = l1.singletonElements
			l1.singletonElements = newDlist[*Element]()
		}

		cur = e.containingContainer.prev
		found = false
		for cur != l1.elements.sentinel {
			if x := cur.item.superelement; x != nil && x.IsSingleton() {
				l2.singletonSuperelements = l1.singletonSuperelements.cutAfter(x.containingContainerSingletonSuperelements)
				found = true
				break
			}
			cur = cur.prev
		}
		if !found {
			l2.singletonSuperelements = l1.singletonSuperelements
			l1.singletonSuperelements = newDlist[*Superelement]()
		}

		if subl2 != nil {
			l2.sublists = l1.sublists.cutAfter(subl2.containingContainerSublists)
		} else {
			l2.sublists = l1.sublists.cutAfter(se.containingSublist.containingContainerSublists)
		}
		return l1, l2
	}

	var lastSingletonElement *node[*Element]
	cur := e.containingContainer.prev
	found := false
	for cur != l1.elements.sentinel {
		el := cur.item
		if el.IsSingleton() && el.superelement == nil {
			lastSingletonElement = el.containingContainerSingletonElements
			found = true
			break
		}
		cur = cur.prev
	}
	if !found {
		lastSingletonElement = l1.singletonElements.sentinel
	}

	var lastSingletonSuperelement *node[*Superelement]
	cur = e.containingContainer.prev
	found = false
	for cur != l1.elements.sentinel {
		if x := cur.item.superelement; x != nil && x.IsSingleton() {
			lastSingletonSuperelement = x.containingContainerSingletonSuperelements
			found = true
			break
		}
		cur = cur.prev
	}
	if !found {
		lastSingletonSuperelement = l1.singletonSuperelements.sentinel
	}

	lastSublist := se.containingSublist.containingContainerSublists.prev

	newSE, newSS, newSL := newDlist[*Element](), newDlist[*Superelement](), newDlist[*Structure]()
	l1.initializeHead(se.first.containingContainer, e.containingContainer, newSE, newSS, newSL)

	lastSingletonElement = l1.singletonElements.insertListAfter(lastSingletonElement, newSE)
	lastSingletonSuperelement = l1.singletonSuperelements.insertListAfter(lastSingletonSuperelement, newSS)
	lastSublist = l1.sublists.insertListAfter(lastSublist, newSL)

	l2.singletonElements = l1.singletonElements.cutAfter(lastSingletonElement)
	l2.singletonSuperelements = l1.singletonSuperelements.cutAfter(lastSingletonSuperelement)
	l2.sublists = l1.sublists.cutAfter(lastSublist)

	// the first entry of l2.sublists is the now-empty {e(x)} placeholder
	// left behind by splitting se's own sublist; drop it.
	l2.sublists = l2.sublists.cutAfter(l2.sublists.sentinel.next)

	newSE, newSS, newSL = newDlist[*Element](), newDlist[*Superelement](), newDlist[*Structure]()
	l1.initializeTail(e.containingContainer.next, se.last.containingContainer, newSE, newSS, newSL)

	newSE.concat(l2.singletonElements)
	newSS.concat(l2.singletonSuperelements)
	newSL.concat(l2.sublists)

	l2.singletonElements = newSE
	l2.singletonSuperelements = newSS
	l2.sublists = newSL
	return l1, l2
}

func deepSetPointers(sub *Structure, containingList *Structure) {
	sub.containingList = containingList
	for _, subsub := range sub.sublists.items() {
		deepSetPointers(subsub, sub)
	}
}

// Superelement groups a contiguous run of elements one level down into a
// single costed unit, so that the level above only ever sees O(size/level)
// positions instead of size.
type Superelement struct {
	level int
	first *Element
	last  *Element
	cost  int64

	// containingList is set iff this superelement is a singleton, i.e. sits
	// directly in some Structure's singletonSuperelements list.
	containingList *Structure

	containingContainerSingletonSuperelements *node[*Superelement]

	// elementInSublist and containingSublist are set iff this superelement
	// is not a singleton, i.e. it is itself wrapped by an Element inside a
	// sublist one level down.
	elementInSublist *Element
	containingSublist *Structure
}

// IsSingleton reports whether this superelement sits directly in a
// Structure's singletonSuperelements list, as opposed to being wrapped by
// an Element inside a sublist one level down.
func (se *Superelement) IsSingleton() bool {
	return se.containingList != nil
}
