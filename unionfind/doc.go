// Package unionfind implements a classical disjoint-set forest with
// union-by-size and full path compression.
//
// Overview:
//
//   - MakeSet creates a new singleton set holding an arbitrary item.
//   - Find returns the canonical representative node of the set containing
//     the given node, compressing every visited node's parent pointer
//     directly to the root on the way.
//   - Union merges two sets by attaching the root with the smaller subtree
//     size under the root with the larger one, accumulating sizes.
//
// This is consumed by mst.KruskalMSB (bucket-sweeping edges into a
// spanning subgraph) and by comptree's construction step, both of which
// need amortized-O(α(n)) merge/query over a fixed vertex set with no
// deletions.
//
// Thread safety: a *Forest is not safe for concurrent use; callers doing
// parallel work must build one Forest per worker.
package unionfind
