// Package ackermann precomputes the two-argument Ackermann function
//
//	A(1,1) = 2
//	A(1,j) = 2 * A(1,j-1)
//	A(i,j) = A(i-1, A(i,j-1))
//
// for all entries not exceeding a fixed bound n, and exposes the inverse
// lookup used by splitfindmin to pick recursion levels and superelement
// sizes.
//
// Overview:
//
//   - NewTable(n) builds and caches every A(i,j) <= n.
//   - Value(i,j) returns the cached value, -1 if absent; by convention
//     Value(i,0) = 2 regardless of i.
//   - Inverse(m,n) implements the branch in SPEC_FULL §4.3: for n >= 4, the
//     greatest j with 2*A(m,j) <= n; otherwise, for m >= n, the least i with
//     A(i, floor(m/n)) cached; otherwise -1.
package ackermann
