// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"; grids ignore the IDFn option
)

// Grid builds a rows×cols orthogonal grid. Vertices are labelled "r,c" in
// row-major order; each cell links to its right then its bottom neighbour.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if g.HasVertex(id) {
					continue
				}
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
