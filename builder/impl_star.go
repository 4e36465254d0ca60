// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds S_n: hub 0 joined to leaves 1..n-1. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
