// Package unvisited couples a component tree to a split-findmin structure,
// giving Thorup's algorithm the operations it needs on the part of the
// tree not yet visited: the minimum super-distance under a node, and the
// ability to decrease a vertex's distance, find the unvisited root above a
// vertex, and delete a visited root so its children become new roots.
//
// Overview:
//
//   - New builds the vertex-to-split-findmin-element mapping in depth-first
//     order over the component tree's leaves, then adds one split-findmin
//     element per vertex, all starting at cost +Inf.
//   - DecreaseD and D read and lower a single vertex's distance through its
//     element.
//   - MinDMinus reports the minimum distance among a node and all of its
//     still-unvisited descendants, using the split-findmin list's running
//     minimum rather than scanning the subtree.
//   - RootAbove walks up from a leaf to the highest ancestor not yet marked
//     visited.
//   - DeleteRoot splits a visited root's split-findmin list after each of
//     its children but the last, so that every child, the last one
//     included, becomes the root of its own list.
//
// Thread safety: a Structure is not safe for concurrent use.
package unvisited
