// SPDX-License-Identifier: MIT
// File: floydwarshall.go
// Role: All-pairs shortest paths and per-source queries.
package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/matrix"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// Unreachable marks a pair with no connecting path.
const Unreachable int64 = -1

// Result is the all-pairs distance table of one Compute call. Indices follow
// Labels, the vertex order of the graph at the time of the call.
type Result struct {
	Labels []string

	dist  *matrix.Dense // matrix.Inf for no path
	index map[string]int
}

// Compute runs Floyd–Warshall over a snapshot of g's weight matrix.
// Complexity: O(V³).
func Compute(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	dist := g.Adjacency()
	if err := matrix.InitDistances(dist); err != nil {
		return nil, fmt.Errorf("floydwarshall: init: %w", err)
	}
	if err := matrix.FloydWarshall(dist); err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}

	labels := g.Labels()
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	return &Result{Labels: labels, dist: dist, index: index}, nil
}

// FromSource computes all pairs and returns the row for source.
// Unknown source yields an error wrapping core.ErrVertexNotFound; the check
// happens before the O(V³) closure runs.
func FromSource(g *core.Graph, source string) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("floydwarshall: source %q: %w", source, core.ErrVertexNotFound)
	}
	res, err := Compute(g)
	if err != nil {
		return nil, err
	}

	return res.From(source)
}

// From returns the shortest distances from label to every vertex, in Labels
// order, with Unreachable for vertices in other components.
func (r *Result) From(label string) ([]int64, error) {
	i, ok := r.index[label]
	if !ok {
		return nil, fmt.Errorf("floydwarshall: %q: %w", label, core.ErrVertexNotFound)
	}
	row, err := r.dist.Row(i)
	if err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}
	for j, d := range row {
		if d == matrix.Inf {
			row[j] = Unreachable
		}
	}

	return row, nil
}

// Between returns the shortest distance from src to des, or Unreachable.
func (r *Result) Between(src, des string) (int64, error) {
	i, ok := r.index[src]
	if !ok {
		return Unreachable, fmt.Errorf("floydwarshall: %q: %w", src, core.ErrVertexNotFound)
	}
	j, ok := r.index[des]
	if !ok {
		return Unreachable, fmt.Errorf("floydwarshall: %q: %w", des, core.ErrVertexNotFound)
	}
	d, err := r.dist.At(i, j)
	if err != nil {
		return Unreachable, fmt.Errorf("floydwarshall: %w", err)
	}
	if d == matrix.Inf {
		return Unreachable, nil
	}

	return d, nil
}

// Matrix returns the full table as rows in Labels order, Unreachable for no path.
func (r *Result) Matrix() [][]int64 {
	out := make([][]int64, len(r.Labels))
	for i, l := range r.Labels {
		out[i], _ = r.From(l)
	}

	return out
}
