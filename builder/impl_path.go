// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: 0-1-2-…-(n-1). Requires n ≥ 2.
// Complexity: O(n) vertices and edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
