// SPDX-License-Identifier: MIT
// Package dfs defines options, sentinel errors and the DFS result.
package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds DFS parameters.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is first visited (pre-order).
	// Returning an error aborts the traversal.
	OnVisit func(label string) error

	// FullTraversal restarts from every unvisited vertex in index order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hook, single-source mode.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(label string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFullTraversal covers every component; the start label may then be empty.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult holds the outcome of one traversal.
type DFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}
