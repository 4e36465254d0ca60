// Package datastructures is an in-memory undirected weighted graph engine.
//
// A graph keeps two synchronized views: a symmetric n×n weight matrix
// (0 = no edge) and an insertion-ordered edge list. Algorithms read
// snapshots of those views:
//
//	core/          - Graph: vertices, edges, weights, printing
//	matrix/        - dense int64 square matrix, symmetry checks, APSP kernel
//	dijkstra/      - single-source shortest paths with optional routes
//	floydwarshall/ - all-pairs shortest paths
//	prim_kruskal/  - minimum spanning trees (Prim, Kruskal)
//	disjoint/      - union-find used by Kruskal
//	bfs/, dfs/     - traversals, components, cycle detection
//	builder/       - deterministic graph fixtures
//	cmd/wgraph     - command-line front end
//
// Quick example:
//
//	a ──3── b ──6── c
//	│ \             /
//	5   2         4
//	│     \     /
//	d ──1── e ─
//
//	g := core.NewGraph(5)
//	for _, l := range []string{"a", "b", "c", "d", "e"} {
//	    _ = g.AddVertex(l)
//	}
//	_ = g.AddEdge("a", "b", 3)
//	...
//	res, _ := dijkstra.Dijkstra(g, "a") // a:0 b:3 c:6 d:3 e:2
//	mst, _ := prim_kruskal.Kruskal(g)   // total weight 10
package datastructures
