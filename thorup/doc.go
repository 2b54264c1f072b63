// Package thorup implements Thorup's deterministic linear-time
// single-source shortest paths algorithm for undirected graphs with
// non-negative integer edge weights.
//
// Overview:
//
//   - Engine.ConstructMinimumSpanningTree computes a msb-minimum spanning
//     tree of the input graph (package mst).
//   - Engine.ConstructOtherDataStructures builds the component tree
//     (package comptree) and the unvisited data structure (package
//     unvisited) the query phase runs on.
//   - Engine.FindShortestPaths answers one query: it relaxes the source's
//     incident edges, then runs the expand/visit state machine over the
//     component tree (Thorup's Algorithms D, E and F) until every vertex
//     has been visited, reading off final distances from the unvisited
//     data structure.
//   - Engine.CleanUpBetweenQueries resets visited-state between queries on
//     the same graph, without rebuilding the msb-MST or component tree.
//
// A prepared Engine answers repeated queries on the same graph in
// O(m + n log log n) time each, after O(m + n log log n) one-time
// preprocessing.
//
// Thread safety: an Engine is not safe for concurrent use; each goroutine
// computing shortest paths on the same graph needs its own Engine built
// from ConstructMinimumSpanningTree/ConstructOtherDataStructures, or must
// serialize access with its own synchronization.
package thorup
