// SPDX-License-Identifier: MIT
// File: cycle.go
// Role: Undirected cycle detection by back-edge search.
package dfs

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

// HasCycle reports whether undirected g contains a cycle. In a simple
// undirected graph any edge from the current vertex to a visited vertex other
// than its DFS parent closes one. A nil graph has no cycle.
// Complexity: O(V²).
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, nil
	}
	visited := make(map[string]bool, g.VertexCount())

	type item struct{ label, parent string }
	for _, root := range g.Labels() {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack := []item{{label: root}}
		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			nbs, err := g.Neighbors(it.label)
			if err != nil {
				return false, fmt.Errorf("dfs: HasCycle: %w", err)
			}
			for _, nb := range nbs {
				if nb.Label == it.parent {
					continue
				}
				if visited[nb.Label] {
					return true, nil
				}
				visited[nb.Label] = true
				stack = append(stack, item{label: nb.Label, parent: it.label})
			}
		}
	}

	return false, nil
}
