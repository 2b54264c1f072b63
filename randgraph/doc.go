// Package randgraph generates pseudo-random connected, weighted,
// undirected graphs for exercising package thorup and its reference
// implementations.
//
// Overview:
//
//   - Generate always adds a Hamiltonian path 0-1-2-...-(n-1) first,
//     guaranteeing connectivity regardless of how the rest of the graph
//     turns out.
//   - It then flips one biased coin per remaining, non-adjacent pair of
//     vertices {i, j}, adding a random-weight edge on heads. The bias is
//     either set directly (WithProbability) or derived from a target
//     average edges-per-vertex (WithEdgesPerVertex).
//   - Every edge weight is drawn uniformly from [1, maxWeight].
//
// Unlike an Erdős-Rényi generator, which does not guarantee connectivity,
// Generate's Hamiltonian-path-first construction always yields a graph
// package thorup can run a query against.
package randgraph
