// SPDX-License-Identifier: MIT
// File: helpers.go
// Role: Idempotent vertex/edge insertion shared by constructors.
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

// addVertices inserts cfg.idFn(0..n-1), skipping labels already present.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if g.HasVertex(id) {
			continue
		}
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects indices i and j with the next weight from cfg.weightFn.
// An existing edge is left untouched and consumes no weight.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	return connect(g, cfg, method, cfg.idFn(i), cfg.idFn(j))
}

// connect is addEdge for constructors with their own label scheme.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if g.HasEdge(u, v) {
		return nil
	}
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
