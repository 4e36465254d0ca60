// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Labels() returns labels in insertion order, which is also index order.
//
// Invariants:
//   - len(labels) == weights.Order() at all times.
//   - RemoveVertex renumbers every index above the removed one.
package core

import "fmt"

// AddVertex appends a new vertex and grows the weight matrix to (n+1)×(n+1),
// preserving existing cells and zero-filling the new row and column.
//
// Errors:
//   - ErrEmptyLabel: label == "".
//   - ErrDuplicateVertex: label already present.
//
// Complexity: O(n) lookup + O(n²) matrix growth.
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if g.IndexOf(label) != -1 {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, label)
	}

	if err := g.weights.Grow(); err != nil {
		return fmt.Errorf("core: AddVertex(%q): %w", label, err)
	}
	g.labels = append(g.labels, label)
	g.mustBeSymmetric("AddVertex")

	g.log.Debug("vertex added", "label", label, "index", len(g.labels)-1)

	return nil
}

// RemoveVertex deletes the vertex, its matrix row and column, and every
// edge-list entry that references it. All indices above the removed one shift
// down by one.
//
// Errors:
//   - ErrVertexNotFound: label unknown.
//
// Complexity: O(n²) matrix compaction + O(E) edge-list filter.
func (g *Graph) RemoveVertex(label string) error {
	idx := g.IndexOf(label)
	if idx == -1 {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	if err := g.weights.RemoveIndex(idx); err != nil {
		return fmt.Errorf("core: RemoveVertex(%q): %w", label, err)
	}
	g.labels = append(g.labels[:idx], g.labels[idx+1:]...)

	// Filter the edge list in place, keeping order.
	kept := g.edges[:0]
	dropped := 0
	for _, e := range g.edges {
		if e.Src == label || e.Des == label {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	// clear the tail so removed labels are not retained
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = Edge{}
	}
	g.edges = kept
	g.mustBeSymmetric("RemoveVertex")

	g.log.Debug("vertex removed", "label", label, "index", idx, "edges_dropped", dropped)

	return nil
}

// HasVertex reports whether label is a vertex of g (the menu's "search vertex").
// Complexity: O(n).
func (g *Graph) HasVertex(label string) bool {
	return g.IndexOf(label) != -1
}

// IndexOf returns the current index of label, or -1 if absent.
// Indices are only valid until the next RemoveVertex.
// Complexity: O(n) linear scan.
func (g *Graph) IndexOf(label string) int {
	if label == "" {
		return -1
	}
	for i, l := range g.labels {
		if l == label {
			return i
		}
	}

	return -1
}

// Label returns the label at index i.
//
// Errors:
//   - ErrVertexNotFound: i outside [0, n).
func (g *Graph) Label(i int) (string, error) {
	if i < 0 || i >= len(g.labels) {
		return "", fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}

	return g.labels[i], nil
}

// Labels returns a copy of all vertex labels in index order.
// Complexity: O(n).
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.labels) }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return len(g.labels) == 0 }
