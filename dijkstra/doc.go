// SPDX-License-Identifier: MIT
// Package dijkstra computes single-source shortest paths over a core.Graph.
//
// The search reads a snapshot of the graph's weight matrix (core.Graph.Adjacency),
// so later mutations of the graph never affect a finished Result. All edge
// weights are strictly positive by construction of core.Graph, so no
// negative-weight scan is needed.
//
// Algorithm:
//
//  1. Validate graph, source label and source existence before any work.
//  2. dist[source] = 0, every other vertex unknown.
//  3. Pop the smallest (vertex, distance) pair from a binary min-heap.
//     Entries for already-finalized vertices are stale and skipped
//     (lazy decrease-key).
//  4. Relax every unvisited neighbour v of u with matrix weight w > 0:
//     if dist[u]+w improves dist[v], record it and push (v, dist[v]).
//  5. Repeat until the heap is empty or the frontier passes MaxDistance.
//
// Vertices never reached are reported as Unreachable (-1).
//
// Options:
//
//   - WithReturnPath()   – record predecessors; enables Result.Path.
//   - WithMaxDistance(d) – stop once the smallest frontier distance exceeds d.
//
// Complexity:
//
//   - Time:  O(V² + E log V); the neighbour scan walks a matrix row.
//   - Space: O(V² + E) for the matrix snapshot and the lazy heap.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "a", dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.Distance("c")
//	path, _ := res.Path("c")
package dijkstra
