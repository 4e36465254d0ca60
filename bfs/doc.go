// SPDX-License-Identifier: MIT
// Package bfs runs breadth-first search over a core.Graph, returning the
// visit order, hop depth and BFS-tree parent of every reached vertex.
//
// Weights are ignored: BFS measures distance in edges. Neighbours are
// enqueued in vertex-index order (core.Graph.Neighbors), so the visit
// sequence is reproducible for a given graph.
//
// Options:
//
//   - WithContext(ctx)   – abort with ctx.Err() when cancelled.
//   - WithOnVisit(fn)    – callback per visited vertex; an error aborts.
//   - WithMaxDepth(d)    – do not enqueue beyond depth d (0 = no limit).
//
// Connected reports whether every vertex is reachable from the first one.
// Components lists connected components in first-vertex order.
//
// Complexity: O(V²) time (neighbour lookup scans a matrix row), O(V) space.
package bfs
