// Package mst computes msb-minimum spanning trees: spanning trees of a
// weighted, undirected, connected core.Graph that minimize, bucket by
// bucket of the most-significant-bit of edge weight, the set of
// components connected so far. Every weighted-MST computed by the usual
// cut property (Prim, Kruskal, Fredman-Tarjan) already has this structure,
// because grouping a weight-ordered edge list into msb buckets preserves
// the order within and across buckets; the distinction only matters to
// Thorup's algorithm, which needs msb(weight), not weight, at each level
// of its component tree.
//
// Overview:
//
//   - Algorithm is the common interface implemented by KruskalMSB, Prim
//     and FredmanTarjan.
//   - KruskalMSB sorts edges directly into msb buckets and sweeps them
//     with a union-find structure, stopping once n-1 tree edges are found;
//     this is the variant actually consumed by package thorup.
//   - Prim and FredmanTarjan compute a conventional weighted MST; both are
//     provided for parity testing against KruskalMSB and as alternative
//     CLI choices.
//
// Error handling: every Algorithm returns ErrNilGraph for a nil graph. A
// disconnected graph is not an error: the sweep simply stops before
// finding n-1 tree edges, and the caller gets back whatever subgraph was
// built. Callers that require a spanning tree must guarantee connectivity
// themselves.
//
// Thread safety: Algorithm implementations hold no state and are safe for
// concurrent use; the returned *core.Graph is a fresh graph owned by the
// caller.
package mst
