// SPDX-License-Identifier: MIT
// Package core defines the Graph, Edge and Neighbor types, graph options,
// sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luluwu516/DataStructures/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrDuplicateVertex indicates AddVertex was called with a label already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that is not strictly positive.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates AddEdge for a pair that is already connected.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// NoWeight is returned by Weight when either endpoint is unknown.
const NoWeight int64 = -1

// Edge is one undirected, weighted connection between two vertex labels.
// Src/Des keep the orientation the edge was added with; it carries no meaning
// beyond display.
type Edge struct {
	// Src is the first endpoint label.
	Src string

	// Des is the second endpoint label.
	Des string

	// Weight is the strictly positive cost of the edge.
	Weight int64
}

// String renders the edge as "src-des weight".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s %d", e.Src, e.Des, e.Weight)
}

// Connects reports whether e joins u and v in either orientation.
func (e Edge) Connects(u, v string) bool {
	return (e.Src == u && e.Des == v) || (e.Src == v && e.Des == u)
}

// Neighbor is an index-based adjacency entry: the vertex at Index (label Label)
// is reachable through an edge of weight Weight.
type Neighbor struct {
	Index  int
	Label  string
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLogger routes mutation diagnostics (Debug level) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is a weighted, undirected graph over string labels.
//
// labels[i] is the label of vertex i; weights is the n×n symmetric matrix
// (0 = no edge); edges mirrors every non-zero upper-triangle cell exactly once.
type Graph struct {
	labels  []string
	weights *matrix.Dense
	edges   []Edge

	log *slog.Logger
}

// NewGraph creates an empty Graph with room for capacity vertices before the
// label slice or the matrix buffer has to reallocate. Negative capacity is
// treated as 0.
//
// Complexity: O(capacity²) for the reserved matrix buffer.
func NewGraph(capacity int, opts ...GraphOption) *Graph {
	if capacity < 0 {
		capacity = 0
	}
	w, _ := matrix.NewDense(0) // order 0 never fails
	_ = w.Reserve(capacity)    // capacity ≥ 0 never fails
	g := &Graph{
		labels:  make([]string, 0, capacity),
		weights: w,
		edges:   make([]Edge, 0, capacity),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
