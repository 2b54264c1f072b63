// Package dijkstraref implements Dijkstra's single-source shortest-path
// algorithm directly on core.Graph's int-indexed vertices, the same
// representation package thorup operates on.
//
// It exists to give package thorup an independent reference answer: any
// divergence between dijkstraref.ShortestPaths and thorup.Engine on the
// same graph is a bug in one of the two, not a matter of interpretation.
//
// Overview:
//
//   - ShortestPaths processes vertices in order of increasing distance
//     using a min-heap priority queue, relaxing edges with a
//     lazy-decrease-key strategy: a shorter distance to an already-queued
//     vertex is pushed as a fresh heap entry rather than updated in
//     place, and stale entries are discarded when popped.
//   - Edge weights must be non-negative; core.Graph already enforces this
//     at construction time, so ShortestPaths does not re-validate it.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
package dijkstraref
