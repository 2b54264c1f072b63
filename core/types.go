package core

import (
	"errors"
	"sync"
)

// Sentinel errors returned by the core graph container.
var (
	// ErrInvalidVertexCount indicates NewGraph was called with n < 1.
	ErrInvalidVertexCount = errors.New("core: vertex count must be >= 1")

	// ErrVertexOutOfRange indicates an edge endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNonPositiveWeight indicates an edge weight is not strictly positive.
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")

	// ErrSelfLoop indicates an edge's source and target are the same vertex.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrParallelEdge indicates a directed edge already exists between the
	// same ordered pair of vertices.
	ErrParallelEdge = errors.New("core: parallel edge already exists")
)

// Edge is one directed arc of the adjacency list: a target vertex and the
// weight of the arc that reaches it. The source vertex is implicit in the
// adjacency-list index it is stored under.
type Edge struct {
	To     int
	Weight int64
}

// Graph is a dense, 0-indexed weighted graph backed by an adjacency list.
// Adjacency lists preserve insertion order; this order is part of the
// Thorup engine's determinism contract (SPEC_FULL §5).
type Graph struct {
	mu       sync.RWMutex
	n        int
	adj      [][]Edge
	numEdges int
}

// NewGraph constructs an empty graph with n vertices and no edges.
// Returns ErrInvalidVertexCount if n < 1.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidVertexCount
	}

	return &Graph{
		n:   n,
		adj: make([][]Edge, n),
	}, nil
}
