// Package core provides the weighted-graph container that every algorithm
// package in this module builds on: a vertex set {0..n-1} and a multiset of
// weighted directed edges, stored as an adjacency list that preserves
// insertion order.
//
// Overview:
//
//   - Vertices are dense integers in [0, n), fixed at construction time.
//   - Edges carry a strictly positive int64 weight.
//   - An undirected edge is stored as two directed copies sharing a weight;
//     AddEdge adds both, AddDirectedEdge adds one.
//   - The graph is read-only once algorithms start consuming it; nothing in
//     this package prevents further mutation, but callers of the Thorup
//     engine must not mutate a graph after calling
//     ConstructMinimumSpanningTree.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidVertexCount: n < 1 passed to NewGraph.
//   - ErrVertexOutOfRange: an edge endpoint is not in [0, n).
//   - ErrNonPositiveWeight: an edge weight is <= 0.
//   - ErrSelfLoop: an edge's endpoints are equal.
//   - ErrParallelEdge: an edge between the same ordered pair already exists.
//
// Thread safety:
//
//   - *Graph guards its adjacency lists with a sync.RWMutex. Construction is
//     expected to happen on a single goroutine before any reader starts;
//     the lock exists so that a graph can safely be shared read-only across
//     worker goroutines per the engine's concurrency model.
package core
