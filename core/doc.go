// Package core provides the weighted, undirected Graph that every algorithm
// package in this module reads from.
//
// The Graph G = (V, E) keeps two views of the same edges:
//
//   - A symmetric weight matrix (matrix.Dense): weight[i][j] == weight[j][i],
//     0 meaning "no edge". Lookups by index are O(1).
//   - An explicit edge list of Edge{Src, Des, Weight} in insertion order, used by
//     Kruskal and for display.
//
// Both views are updated by every mutation and must always agree on which
// pairs are connected and at what weight.
//
// Vertices:
//
//	Vertices are unique, non-empty string labels stored in an ordered slice
//	indexed 0..n-1. Label→index lookup is a linear scan, acceptable for the
//	small, illustrative graphs this package targets.
//
//	RemoveVertex deletes the vertex's row and column and shifts every higher
//	index down by one; any index obtained before the removal is invalid after it.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label string) error              // O(n²) (matrix growth)
//	RemoveVertex(label string) error           // O(n² + E)
//	HasVertex(label string) bool               // O(n)
//	IndexOf(label string) int                  // O(n), -1 when absent
//
//	// Edge lifecycle
//	AddEdge(src, des string, weight int64) error // O(n) lookup + O(n²) symmetry assertion
//	RemoveEdge(src, des string) error            // O(n + E)
//	HasEdge(src, des string) bool                // O(n)
//	Weight(src, des string) (int64, error)       // O(n); NoWeight (-1) when not found
//
//	// Query
//	Labels() []string                 // insertion order
//	Edges() []Edge                    // insertion order
//	Neighbors(label) ([]Neighbor, error)
//	Adjacency() *matrix.Dense         // defensive copy
//	Fprint(w io.Writer) error         // Vertices / Matrix / Edges dump
//
// Invariant checking:
//
//	Every mutation finishes with a symmetry assertion. Asymmetry can only be
//	produced by a programming error inside this package, so it panics with an
//	error wrapping matrix.ErrAsymmetry instead of being returned.
//
// Concurrency:
//
//	Graph is not safe for concurrent use. It is a single-caller, in-memory
//	structure; algorithms read through copies (Adjacency, Labels) so results
//	are unaffected by later mutation.
//
// Errors:
//
//	ErrEmptyLabel       – zero-length vertex label
//	ErrDuplicateVertex  – AddVertex with an existing label
//	ErrVertexNotFound   – unknown vertex label
//	ErrBadWeight        – edge weight ≤ 0
//	ErrLoopNotAllowed   – AddEdge(v, v, ...)
//	ErrEdgeExists       – AddEdge for an already connected pair
//	ErrEdgeNotFound     – RemoveEdge for an unconnected pair
package core
