// SPDX-License-Identifier: MIT
// File: kruskal.go
// Role: Kruskal's MST over a sorted copy of the edge list.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/disjoint"
)

// Kruskal computes a minimum spanning tree of g.
//
// Steps:
//  1. Validate: g non-nil, at least two vertices.
//  2. Copy the edge list and stable-sort it by ascending weight.
//  3. Start a fresh disjoint.Set with one singleton per vertex index.
//  4. Accept each edge whose endpoints have different roots; stop at |V|−1.
//  5. Fewer than |V|−1 accepted edges: return the forest and ErrDisconnected.
//
// Complexity: O(E log E + E·α(V)).
func Kruskal(g *core.Graph) (*MST, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientVertices, n)
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := disjoint.New(n)
	mst := &MST{Edges: make([]core.Edge, 0, n-1)}
	for _, e := range edges {
		u, v := g.IndexOf(e.Src), g.IndexOf(e.Des)
		if !ds.Union(u, v) {
			continue // would close a cycle
		}
		mst.add(e)
		if len(mst.Edges) == n-1 {
			break
		}
	}

	if len(mst.Edges) < n-1 {
		return mst, fmt.Errorf("%w: %d components", ErrDisconnected, ds.Count())
	}

	return mst, nil
}
