// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim is a cycle of n-1 ≥ 3
	hubVertexID   = "hub"
)

// Wheel builds W_n: Cycle(n-1) over cfg.idFn(0..n-2) plus a "hub" vertex
// joined to every rim vertex in index order. Requires n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if !g.HasVertex(hubVertexID) {
			if err := g.AddVertex(hubVertexID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, hubVertexID, err)
			}
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, methodWheel, hubVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
