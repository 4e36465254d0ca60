// SPDX-License-Identifier: MIT
// File: api.go
// Role: BuildGraph orchestrator and the Constructor contract.
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

// Constructor applies one deterministic topology to g. Constructors validate
// their arguments up front and return sentinel-wrapped errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w";
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
