// SPDX-License-Identifier: MIT
// Package dijkstra defines sentinel errors, options and the Result type.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/luluwu516/DataStructures/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source label is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex label is empty")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that Path was asked for an unreachable vertex.
	ErrNoPath = errors.New("dijkstra: vertex is unreachable")

	// ErrPathNotRecorded indicates Path was called without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded; use WithReturnPath")
)

// Unreachable marks a vertex the search never reached.
const Unreachable int64 = -1

// Options configures a Dijkstra run.
type Options struct {
	ReturnPath  bool  // record predecessors for Path
	MaxDistance int64 // frontier cap; math.MaxInt64 means no cap
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithReturnPath enables predecessor tracking so Result.Path can rebuild routes.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops the search once the smallest frontier distance is
// greater than max. Vertices beyond the cap are reported Unreachable.
// A negative max panics with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no predecessors, no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}

// Result holds the outcome of one Dijkstra run. Indices follow the vertex
// order of the graph at the time of the call (Labels).
type Result struct {
	// Source is the start label.
	Source string

	// Labels is the vertex order the run used.
	Labels []string

	// Dist[i] is the shortest distance from Source to Labels[i], or Unreachable.
	Dist []int64

	// Prev[i] is the predecessor index of Labels[i] on its shortest path,
	// -1 for the source and unreachable vertices. Nil unless WithReturnPath.
	Prev []int

	index map[string]int
}

func newResult(source string, labels []string, returnPath bool) *Result {
	n := len(labels)
	r := &Result{
		Source: source,
		Labels: labels,
		Dist:   make([]int64, n),
		index:  make(map[string]int, n),
	}
	for i, l := range labels {
		r.Dist[i] = Unreachable
		r.index[l] = i
	}
	if returnPath {
		r.Prev = make([]int, n)
		for i := range r.Prev {
			r.Prev[i] = -1
		}
	}

	return r
}

// Distance returns the shortest distance to label, or Unreachable.
// Unknown labels yield an error wrapping core.ErrVertexNotFound.
func (r *Result) Distance(label string) (int64, error) {
	i, ok := r.index[label]
	if !ok {
		return Unreachable, fmt.Errorf("%w: %q", core.ErrVertexNotFound, label)
	}

	return r.Dist[i], nil
}

// Map returns label → distance for every vertex, Unreachable included.
func (r *Result) Map() map[string]int64 {
	m := make(map[string]int64, len(r.Labels))
	for i, l := range r.Labels {
		m[l] = r.Dist[i]
	}

	return m
}

// Path returns the vertex labels on the shortest route Source → … → label.
// Requires WithReturnPath.
func (r *Result) Path(label string) ([]string, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	i, ok := r.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, label)
	}
	if r.Dist[i] == Unreachable {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, label)
	}

	var rev []string
	for ; i != -1; i = r.Prev[i] {
		rev = append(rev, r.Labels[i])
	}
	path := make([]string, len(rev))
	for k := range rev {
		path[k] = rev[len(rev)-1-k]
	}

	return path, nil
}
