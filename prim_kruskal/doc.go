// SPDX-License-Identifier: MIT
// Package prim_kruskal computes minimum spanning trees of a core.Graph with
// Kruskal's and Prim's algorithms.
//
// Kruskal(g)
//
//   - Strategy: sort a copy of the edge list by ascending weight (stable, so
//     equal weights keep insertion order), then accept every edge whose
//     endpoints lie in different disjoint.Set components. Stop at |V|−1 edges.
//   - The graph's own edge list is never reordered.
//   - The union–find state is created per call and discarded afterwards.
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
// Prim(g, root)
//
//   - Strategy: grow one tree from root. A min-heap holds candidate edges
//     from the tree to outside vertices; popped edges whose far end is already
//     in the tree are stale and skipped.
//   - Edges are reported in acceptance order.
//   - Complexity: O(V² + E log E) time (neighbour scans walk matrix rows),
//     O(V + E) space.
//
// Outcomes
//
//   - |V| < 2: Kruskal returns ErrInsufficientVertices. Prim on a single
//     vertex returns an empty tree and no error.
//   - Disconnected graph: both return the minimum spanning forest they built
//     (Kruskal) or the tree of root's component (Prim) together with
//     ErrDisconnected. Callers that only want full trees check the error.
//   - Prim validates root (ErrEmptyRoot, core.ErrVertexNotFound) before work.
//
// Compute dispatches by options:
//
//	mst, err := prim_kruskal.Compute(g,
//	    prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
//	    prim_kruskal.WithRoot("a"),
//	)
package prim_kruskal
