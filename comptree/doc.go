// Package comptree builds the component tree of Thorup's single-source
// shortest paths algorithm: a rooted forest of at most 2n-1 nodes, whose
// leaves are the graph's vertices and whose internal nodes are the
// connected components formed as the msb-minimum spanning tree is swept
// in order of increasing most-significant bit.
//
// Overview:
//
//   - Build runs Algorithm G over an msb-MST: a union-find sweep of the
//     tree's edges, grouped by the most-significant-bit of their weight,
//     that produces one internal Node per merge event at a new msb level.
//   - Every internal Node carries the level i it was created at (the
//     msb+1 of the edge that triggered its creation), the bucket count
//     delta, and, once package thorup has expanded it, a contiguous range of
//     buckets indexed [ix0, ix8] used by package thorup's expand/visit
//     state machine.
//   - Node.InitializeBuckets/Bucket/MoveToBucket/RemoveFromParentBucket
//     implement the bucketing operations Algorithm D/E rely on.
//
// Thread safety: a Tree is not safe for concurrent use.
package comptree
