// Package splitfindmin implements Harold N. Gabow's split-findmin structure:
// a list of costed elements supporting DecreaseCost and Split in amortized
// O(alpha(m,n)) time, where alpha is the functional inverse of Ackermann's
// function (see package ackermann).
//
// Overview:
//
//   - NewStructure allocates an empty structure at a given recursion level.
//   - Add appends an element with a given cost and returns a handle to it.
//   - Initialize must be called once, after all elements have been added via
//     Add, before DecreaseCost or Split may be used. It partitions the list
//     into a recursive hierarchy of superelements, sublists and singleton
//     leftovers, following Gabow's construction.
//   - Element.DecreaseCost lowers an element's cost and propagates the new
//     minimum up through every level of the hierarchy it participates in,
//     returning the (innermost) list it belongs to.
//   - Element.Split cuts the structure into everything up to and including
//     the receiver, and everything after, reinitializing whichever
//     sub-hierarchy the cut passed through. Returns the second list.
//   - Structure.Cost and Element.Cost/ListCost read back the running minima
//     maintained by the above.
//
// A Structure does not store caller payloads: callers identify elements by
// the *Element handle Add returns, not by a stored item. This keeps the
// recursive superelement/sublist hierarchy a single concrete, non-generic
// type instead of an unboundedly-nested generic (the hierarchy's sublists
// hold elements that wrap Superelements one level up, which wrap elements
// of the level below that, and so on down to alpha(m,n) levels).
//
// Thread safety: a Structure is not safe for concurrent use. Callers that
// need concurrent access must serialize it externally.
package splitfindmin
