// SPDX-License-Identifier: MIT
// Package dfs runs depth-first search over a core.Graph and detects cycles.
//
// DFS is iterative (an explicit stack, no recursion depth limit) and visits
// neighbours lowest vertex index first, producing a pre-order sequence:
//
//	res, _ := dfs.DFS(g, "a")
//	res.Order  // pre-order visit sequence
//	res.Depth  // tree depth per vertex
//	res.Parent // DFS-tree parent per vertex (start excluded)
//
// WithFullTraversal restarts from every unvisited vertex, yielding a DFS
// forest over all components.
//
// HasCycle reports whether an undirected graph contains a cycle. It is used
// to re-validate spanning trees produced by prim_kruskal.
//
// Complexity: O(V²) time (neighbour lookup scans a matrix row), O(V) space.
package dfs
