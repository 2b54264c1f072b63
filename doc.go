// Package thorupsssp implements Thorup's 1997 deterministic
// linear-time algorithm for single-source shortest paths on undirected
// graphs with non-negative integer edge weights, together with the
// supporting data structures it depends on and the tooling needed to
// exercise it end to end.
//
// What this module provides:
//
//   - core        — a dense, int-indexed, weighted undirected graph
//   - unionfind   — path-compressing, union-by-size union-find
//   - mst         — three msb-minimum spanning tree algorithms
//     (Kruskal+union-find, Fredman–Tarjan style, Prim)
//   - ackermann   — the inverse-Ackermann table the split-findmin
//     structure's level parameter is chosen from
//   - splitfindmin — Gabow's split-findmin structure
//   - comptree    — the component tree built from an msb-MST
//   - unvisited   — the per-query unvisited-vertex bookkeeping layered
//     on top of comptree and splitfindmin
//   - thorup      — the engine tying all of the above together into
//     ConstructMinimumSpanningTree / ConstructOtherDataStructures /
//     FindShortestPaths / CleanUpBetweenQueries
//   - dijkstraref — a heap-based Dijkstra reference implementation for
//     cross-checking thorup's output
//   - dimacs      — a streaming parser and writer for the DIMACS
//     shortest-paths challenge graph format
//   - randgraph   — a connected random weighted graph generator
//   - bench       — benchmarks and a repeated-query measurement series
//   - cmd/thorupsssp — a CLI wrapping query/gen/bench
//
// Thorup's algorithm runs in O(m) time for an m-edge graph once an
// msb-minimum spanning tree is available, independent of the edge
// weights themselves; the cost usually associated with Dijkstra's
// comparison-based priority queue is paid once, during MST
// construction, rather than once per query.
package thorupsssp
