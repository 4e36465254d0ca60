// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n with edges added in (i, j), i < j, lexicographic order.
// Requires n ≥ 1.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
