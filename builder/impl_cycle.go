// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n: the path 0..n-1 closed by (n-1)-0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
