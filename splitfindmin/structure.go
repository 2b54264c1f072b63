package splitfindmin

import "github.com/katalvlaran/thorupsssp/core"

// Structure is one node of Gabow's recursive split-findmin hierarchy: a
// list of elements, together with the partition of those elements into
// superelements, sublists-of-superelements and singleton leftovers that
// Initialize computes.
type Structure struct {
	ackermann levelTable
	level     int
	cost      int64

	elements               *dlist[*Element]
	singletonElements      *dlist[*Element]
	singletonSuperelements *dlist[*Superelement]
	sublists               *dlist[*Structure]

	// containingList is set iff this Structure is itself a sublist
	// contained in some parent Structure's sublists list.
	containingList              *Structure
	containingContainerSublists *node[*Structure]
}

// levelTable is the minimal interface Structure needs from package
// ackermann: *ackermann.Table satisfies it directly.
type levelTable interface {
	Value(i, j int) int
	Inverse(m, n int) int
}

// NewStructure allocates an empty structure at the given recursion level.
// level is the "i" of Gabow's construction: the level passed to the
// ackermann table when partitioning this list's elements into
// superelements. Callers building a fresh, top-level structure should pick
// the smallest level for which the table has enough entries to cover the
// number of elements they intend to Add; see thorup.Engine for the level
// Thorup's algorithm uses in practice.
func NewStructure(ack levelTable, level int) *Structure {
	return &Structure{
		ackermann:              ack,
		level:                  level,
		cost:                   core.Inf,
		elements:               newDlist[*Element](),
		singletonElements:      newDlist[*Element](),
		singletonSuperelements: newDlist[*Superelement](),
		sublists:               newDlist[*Structure](),
	}
}

// Add appends a new element with the given cost to this structure and
// returns a handle to it. Add must not be called after Initialize.
func (s *Structure) Add(cost int64) *Element {
	return s.appendElement(cost)
}

func (s *Structure) appendElement(cost int64) *Element {
	e := &Element{cost: cost}
	c := s.elements.add(e)
	e.containingContainer = c
	return e
}

func (s *Structure) prependElement(cost int64) *Element {
	e := &Element{cost: cost}
	c := s.elements.addFirst(e)
	e.containingContainer = c
	return e
}

// Initialize partitions this structure's elements into superelements,
// sublists and singletons, recursively initializing every sublist produced.
// Must be called exactly once, after every Add and before any DecreaseCost
// or Split.
func (s *Structure) Initialize() {
	s.initializeHeadFull()
}

// Cost returns the smallest cost among this structure's elements, or, if
// this structure is itself a sublist, the cost of whichever structure
// (possibly several levels up) ultimately contains it.
func (s *Structure) Cost() int64 {
	if s.containingList == nil {
		return s.cost
	}
	return s.containingList.Cost()
}

func (s *Structure) initializeHeadFull() {
	if s.elements.isEmpty() {
		return
	}
	s.initializeHead(s.elements.sentinel.next, s.elements.last, s.singletonElements, s.singletonSuperelements, s.sublists)
	for _, e := range s.elements.items() {
		s.cost = min64(s.cost, e.cost)
	}
}

func (s *Structure) initializeTailFull() {
	if s.elements.isEmpty() {
		return
	}
	s.initializeTail(s.elements.sentinel.next, s.elements.last, s.singletonElements, s.singletonSuperelements, s.sublists)
	for _, e := range s.elements.items() {
		s.cost = min64(s.cost, e.cost)
	}
}

// initializeHead scans the elements from last back to first, partitioning
// them into superelements sized by the inverse-Ackermann table, grouping
// runs of same-level superelements into a sublist one level down, and
// demoting lone superelements and unconsumed elements to singletons. The
// three results are appended to the given output lists from the front, so
// that the overall left-to-right order of the scanned range is preserved.
func (s *Structure) initializeHead(first, last *node[*Element], outSE *dlist[*Element], outSS *dlist[*Superelement], outSL *dlist[*Structure]) {
	size := 0
	for cur := last; cur != first.prev; cur = cur.prev {
		size++
	}

	cur := last
	processed := 0
	inCurrentSublist := 0
	var mostRecent *Superelement
	currentSublist := NewStructure(s.ackermann, s.level-1)

	for size-processed > 3 {
		level := s.ackermann.Inverse(s.level, size-processed)

		se := &Superelement{level: level, cost: core.Inf}
		numElements := 2 * s.ackermann.Value(s.level, level)

		se.last = cur.item
		for k := 0; k < numElements; k++ {
			cur.item.superelement = se
			se.cost = min64(se.cost, cur.item.cost)
			cur = cur.prev
		}
		se.first = cur.next.item

		if mostRecent != nil && mostRecent.level != level {
			if inCurrentSublist > 1 {
				c := outSL.addFirst(currentSublist)
				currentSublist.containingContainerSublists = c
				currentSublist.containingList = s
			} else {
				c := outSS.addFirst(mostRecent)
				mostRecent.containingContainerSingletonSuperelements = c
				mostRecent.containingList = s
				mostRecent.elementInSublist = nil
				mostRecent.containingSublist = nil
			}
			currentSublist = NewStructure(s.ackermann, s.level-1)
			inCurrentSublist = 0
		}

		e := currentSublist.prependElement(se.cost)
		e.wraps = se
		se.elementInSublist = e
		se.containingSublist = currentSublist
		inCurrentSublist++

		processed += numElements
		mostRecent = se
	}

	if inCurrentSublist > 1 {
		c := outSL.addFirst(currentSublist)
		currentSublist.containingContainerSublists = c
		currentSublist.containingList = s
	} else if mostRecent != nil {
		c := outSS.addFirst(mostRecent)
		mostRecent.containingContainerSingletonSuperelements = c
		mostRecent.containingList = s
		mostRecent.elementInSublist = nil
		mostRecent.containingSublist = nil
	}

	for cur != first.prev {
		c := outSE.addFirst(cur.item)
		cur.item.containingContainerSingletonElements = c
		cur.item.containingList = s
		cur.item.superelement = nil
		cur = cur.prev
	}

	for _, sub := range outSL.items() {
		sub.initializeHeadFull()
	}
}

// initializeTail is the mirror image of initializeHead: it scans left to
// right and appends results to the output lists' ends, so the overall
// order of the scanned range is still preserved.
func (s *Structure) initializeTail(first, last *node[*Element], outSE *dlist[*Element], outSS *dlist[*Superelement], outSL *dlist[*Structure]) {
	size := 0
	for cur := first; cur != last.next; cur = cur.next {
		size++
	}

	cur := first
	processed := 0
	inCurrentSublist := 0
	var mostRecent *Superelement
	currentSublist := NewStructure(s.ackermann, s.level-1)

	for size-processed > 3 {
		level := s.ackermann.Inverse(s.level, size-processed)

		se := &Superelement{level: level, cost: core.Inf}
		numElements := 2 * s.ackermann.Value(s.level, level)

		se.first = cur.item
		for k := 0; k < numElements; k++ {
			cur.item.superelement = se
			se.cost = min64(se.cost, cur.item.cost)
			cur = cur.next
		}
		se.last = cur.prev.item

		if mostRecent != nil && mostRecent.level != level {
			if inCurrentSublist > 1 {
				c := outSL.add(currentSublist)
				currentSublist.containingContainerSublists = c
				currentSublist.containingList = s
			} else {
				c := outSS.add(mostRecent)
				mostRecent.containingContainerSingletonSuperelements = c
				mostRecent.containingList = s
				mostRecent.elementInSublist = nil
				mostRecent.containingSublist = nil
			}
			currentSublist = NewStructure(s.ackermann, s.level-1)
			inCurrentSublist = 0
		}

		e := currentSublist.appendElement(se.cost)
		e.wraps = se
		se.elementInSublist = e
		se.containingSublist = currentSublist
		inCurrentSublist++

		processed += numElements
		mostRecent = se
	}

	if inCurrentSublist > 1 {
		c := outSL.add(currentSublist)
		currentSublist.containingContainerSublists = c
		currentSublist.containingList = s
	} else if mostRecent != nil {
		c := outSS.add(mostRecent)
		mostRecent.containingContainerSingletonSuperelements = c
		mostRecent.containingList = s
		mostRecent.elementInSublist = nil
		mostRecent.containingSublist = nil
	}

	for cur != last.next {
		c := outSE.add(cur.item)
		cur.item.containingContainerSingletonElements = c
		cur.item.containingList = s
		cur.item.superelement = nil
		cur = cur.next
	}

	for _, sub := range outSL.items() {
		sub.initializeTailFull()
	}
}
