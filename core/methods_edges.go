// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & weight queries.
//
// Invariants:
//   - weights[i][j] == weights[j][i] after every call.
//   - An Edge{u, v, w} is in the list iff weights[u][v] == w > 0.
package core

import "fmt"

// endpoints resolves both labels to indices.
func (g *Graph) endpoints(src, des string) (int, int, error) {
	si := g.IndexOf(src)
	if si == -1 {
		return -1, -1, fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	di := g.IndexOf(des)
	if di == -1 {
		return -1, -1, fmt.Errorf("%w: %q", ErrVertexNotFound, des)
	}

	return si, di, nil
}

// cell reads weights[i][j] for indices already known to be valid.
func (g *Graph) cell(i, j int) int64 {
	v, _ := g.weights.At(i, j)

	return v
}

// AddEdge connects src and des with the given weight, writing both matrix
// cells and appending Edge{src, des, weight} to the edge list.
//
// Validation order:
//  1. weight > 0 (ErrBadWeight).
//  2. both endpoints exist (ErrVertexNotFound).
//  3. src != des (ErrLoopNotAllowed).
//  4. the pair is not yet connected, checked via the matrix (ErrEdgeExists).
//
// Complexity: O(n) lookup; the trailing symmetry assertion is O(n²).
func (g *Graph) AddEdge(src, des string, weight int64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	si, di, err := g.endpoints(src, des)
	if err != nil {
		return err
	}
	if si == di {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, src)
	}
	if g.cell(si, di) != 0 {
		return fmt.Errorf("%w: %s-%s", ErrEdgeExists, src, des)
	}

	if err = g.weights.SetSymmetric(si, di, weight); err != nil {
		return fmt.Errorf("core: AddEdge(%q,%q): %w", src, des, err)
	}
	g.edges = append(g.edges, Edge{Src: src, Des: des, Weight: weight})
	g.mustBeSymmetric("AddEdge")

	g.log.Debug("edge added", "src", src, "des", des, "weight", weight)

	return nil
}

// RemoveEdge disconnects src and des, zeroing both matrix cells and removing
// the edge-list entry regardless of the orientation it was added with.
//
// Errors:
//   - ErrVertexNotFound: either endpoint unknown.
//   - ErrEdgeNotFound: the pair is not connected.
//
// Complexity: O(n + E) plus the O(n²) symmetry assertion.
func (g *Graph) RemoveEdge(src, des string) error {
	si, di, err := g.endpoints(src, des)
	if err != nil {
		return err
	}
	if si == di || g.cell(si, di) == 0 {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, src, des)
	}

	if err = g.weights.SetSymmetric(si, di, 0); err != nil {
		return fmt.Errorf("core: RemoveEdge(%q,%q): %w", src, des, err)
	}
	for i, e := range g.edges {
		if e.Connects(src, des) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	g.mustBeSymmetric("RemoveEdge")

	g.log.Debug("edge removed", "src", src, "des", des)

	return nil
}

// HasEdge reports whether src and des are connected (the menu's "search edge").
// Unknown labels yield false.
// Complexity: O(n).
func (g *Graph) HasEdge(src, des string) bool {
	si, di, err := g.endpoints(src, des)
	if err != nil {
		return false
	}

	return g.cell(si, di) != 0
}

// Weight returns the matrix entry for (src, des): the edge weight, or 0 when
// both vertices exist but are not connected.
//
// Errors:
//   - ErrVertexNotFound (with NoWeight): either endpoint unknown.
//
// Complexity: O(n).
func (g *Graph) Weight(src, des string) (int64, error) {
	si, di, err := g.endpoints(src, des)
	if err != nil {
		return NoWeight, err
	}

	return g.cell(si, di), nil
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns every vertex adjacent to label, ordered by index.
//
// Errors:
//   - ErrVertexNotFound: label unknown.
//
// Complexity: O(n) (one matrix row).
func (g *Graph) Neighbors(label string) ([]Neighbor, error) {
	idx := g.IndexOf(label)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	row, err := g.weights.Row(idx)
	if err != nil {
		return nil, fmt.Errorf("core: Neighbors(%q): %w", label, err)
	}
	out := make([]Neighbor, 0, len(row))
	for j, w := range row {
		if w > 0 {
			out = append(out, Neighbor{Index: j, Label: g.labels[j], Weight: w})
		}
	}

	return out, nil
}
