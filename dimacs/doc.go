// Package dimacs parses graphs in the DIMACS shortest-paths challenge
// format into a *core.Graph.
//
// Overview:
//
//   - Parse reads line by line: "c" lines are comments, "p sp n m"
//     declares a shortest-paths problem over n vertices and m arcs, and
//     "a u v w" lines each describe one weighted arc (1-indexed, made
//     0-indexed on the way in).
//   - DIMACS describes directed arcs; an undirected graph is encoded as
//     two arcs per edge, one in each direction. Parse adds the first arc
//     of a pair and silently skips its mirror, logging the skip at debug
//     level when verbose logging is enabled.
//
// Error handling: Parse returns a wrapped error (via
// github.com/pkg/errors) identifying the offending line on any malformed
// input; it never panics on bad input.
//
// Write is Parse's inverse: it serializes a *core.Graph back into the
// same mirrored-arc format, for the gen subcommand of cmd/thorupsssp.
package dimacs
