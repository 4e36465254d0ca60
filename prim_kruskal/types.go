// SPDX-License-Identifier: MIT
// Package prim_kruskal defines sentinel errors, the MST result and options.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrEmptyRoot indicates that no start vertex was specified for Prim.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

	// ErrInsufficientVertices indicates Kruskal was run on fewer than two vertices.
	ErrInsufficientVertices = errors.New("prim_kruskal: need at least two vertices")

	// ErrDisconnected indicates no spanning tree covers every vertex.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates Compute was given an unsupported method name.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MST is a spanning tree (or, with ErrDisconnected, a spanning forest).
type MST struct {
	// Edges in acceptance order.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight int64
}

func (m *MST) add(e core.Edge) {
	m.Edges = append(m.Edges, e)
	m.TotalWeight += e.Weight
}

// MSTOptions configures Compute.
type MSTOptions struct {
	// Method is MethodKruskal (default) or MethodPrim.
	Method string

	// Root is Prim's start vertex; ignored by Kruskal.
	Root string
}

// Option mutates MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *MSTOptions) {
		o.Method = m
	}
}

// WithRoot sets Prim's start vertex.
func WithRoot(root string) Option {
	return func(o *MSTOptions) {
		o.Root = root
	}
}

// DefaultOptions selects Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm chosen by opts.
func Compute(g *core.Graph, opts ...Option) (*MST, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
