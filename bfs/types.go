// SPDX-License-Identifier: MIT
// Package bfs defines options, sentinel errors and the BFS result.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS.
type Option func(*BFSOptions)

// BFSOptions holds BFS parameters.
type BFSOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit runs for each vertex as it is dequeued; an error aborts BFS.
	OnVisit func(label string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no hook and no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback. Nil is ignored.
func WithOnVisit(fn func(label string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth. Negative d is recorded and surfaced
// as ErrOptionViolation when BFS runs.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of one traversal.
type BFSResult struct {
	// Order is the visit sequence.
	Order []string

	// Depth is the hop count from the start for each reached vertex.
	Depth map[string]int

	// Parent maps each reached vertex (except the start) to its BFS-tree parent.
	Parent map[string]string
}

// PathTo reconstructs the fewest-hops path from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
