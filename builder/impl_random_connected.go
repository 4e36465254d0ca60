// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodRandomConnected   = "RandomConnected"
	minRandomConnectedNodes = 1
)

// RandomConnected builds a connected graph on n vertices: a random spanning
// tree (vertex i attaches to a uniformly chosen j < i) plus up to extra
// additional edges drawn without replacement from the remaining pairs.
// Requires n ≥ 1, extra ≥ 0 and an RNG (WithSeed or WithRand).
//
// Complexity: O(n²) to enumerate candidate pairs.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedNodes, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d: %w", methodRandomConnected, extra, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomConnected, n); err != nil {
			return err
		}

		rng := cfg.rng
		tree := make(map[[2]int]bool, n)
		for i := 1; i < n; i++ {
			j := rng.Intn(i)
			tree[[2]int{j, i}] = true
			if err := addEdge(g, cfg, methodRandomConnected, j, i); err != nil {
				return err
			}
		}

		var candidates [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !tree[[2]int{i, j}] {
					candidates = append(candidates, [2]int{i, j})
				}
			}
		}
		rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		if extra > len(candidates) {
			extra = len(candidates)
		}
		for _, p := range candidates[:extra] {
			if err := addEdge(g, cfg, methodRandomConnected, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
