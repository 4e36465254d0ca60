// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luluwu516/DataStructures/bfs"
	"github.com/luluwu516/DataStructures/builder"
	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/dfs"
	"github.com/luluwu516/DataStructures/disjoint"
	"github.com/luluwu516/DataStructures/prim_kruskal"
)

var pentagonEdges = []core.Edge{
	{Src: "a", Des: "b", Weight: 3},
	{Src: "a", Des: "d", Weight: 5},
	{Src: "a", Des: "e", Weight: 2},
	{Src: "b", Des: "c", Weight: 6},
	{Src: "c", Des: "e", Weight: 4},
	{Src: "d", Des: "e", Weight: 1},
}

func pentagon(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph(5)
	for _, l := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddVertex(l))
	}
	for _, e := range pentagonEdges {
		require.NoError(t, g.AddEdge(e.Src, e.Des, e.Weight))
	}

	return g
}

func TestKruskal_Pentagon(t *testing.T) {
	g := pentagon(t)

	mst, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{Src: "d", Des: "e", Weight: 1},
		{Src: "a", Des: "e", Weight: 2},
		{Src: "a", Des: "b", Weight: 3},
		{Src: "c", Des: "e", Weight: 4},
	}, mst.Edges)
	assert.Equal(t, int64(10), mst.TotalWeight)

	assert.Equal(t, pentagonEdges, g.Edges(), "graph edge list keeps insertion order")

	// second run on the same graph sees fresh union-find state
	again, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, mst, again)
}

func TestKruskal_AfterMutation(t *testing.T) {
	g := pentagon(t)
	_, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("e"))
	mst, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3+5+6), mst.TotalWeight)
	assert.Len(t, mst.Edges, 3)
}

func TestPrim_Pentagon(t *testing.T) {
	mst, err := prim_kruskal.Prim(pentagon(t), "a")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{Src: "a", Des: "e", Weight: 2},
		{Src: "e", Des: "d", Weight: 1},
		{Src: "a", Des: "b", Weight: 3},
		{Src: "e", Des: "c", Weight: 4},
	}, mst.Edges)
	assert.Equal(t, int64(10), mst.TotalWeight)
}

func TestMST_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, err = prim_kruskal.Prim(nil, "a")
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	one := core.NewGraph(1)
	require.NoError(t, one.AddVertex("solo"))
	_, err = prim_kruskal.Kruskal(one)
	assert.ErrorIs(t, err, prim_kruskal.ErrInsufficientVertices)
	_, err = prim_kruskal.Kruskal(core.NewGraph(0))
	assert.ErrorIs(t, err, prim_kruskal.ErrInsufficientVertices)

	mst, err := prim_kruskal.Prim(one, "solo")
	require.NoError(t, err)
	assert.Empty(t, mst.Edges)
	assert.Zero(t, mst.TotalWeight)

	g := pentagon(t)
	_, err = prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)
	_, err = prim_kruskal.Prim(g, "zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestMST_Disconnected(t *testing.T) {
	g := pentagon(t)
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	require.NoError(t, g.AddEdge("x", "y", 8))
	require.False(t, bfs.Connected(g))

	forest, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	require.NotNil(t, forest)
	assert.Len(t, forest.Edges, 5, "spanning forest: 4 + 1 edges")
	assert.Equal(t, int64(18), forest.TotalWeight)

	partial, err := prim_kruskal.Prim(g, "a")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	require.NotNil(t, partial)
	assert.Equal(t, int64(10), partial.TotalWeight)

	partial, err = prim_kruskal.Prim(g, "y")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Equal(t, []core.Edge{{Src: "y", Des: "x", Weight: 8}}, partial.Edges)
}

func TestCompute_Dispatch(t *testing.T) {
	g := pentagon(t)

	k, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	p, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("c"),
	)
	require.NoError(t, err)
	assert.Equal(t, k.TotalWeight, p.TotalWeight)
	assert.Equal(t, "c", p.Edges[0].Src)
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the
// lightest one that forms a spanning tree, or math.MaxInt64 if none does.
func bruteForceMST(g *core.Graph) int64 {
	edges := g.Edges()
	n := g.VertexCount()
	best := int64(math.MaxInt64)

	var pick func(start int, chosen []core.Edge)
	pick = func(start int, chosen []core.Edge) {
		if len(chosen) == n-1 {
			ds := disjoint.New(n)
			var total int64
			for _, e := range chosen {
				if !ds.Union(g.IndexOf(e.Src), g.IndexOf(e.Des)) {
					return
				}
				total += e.Weight
			}
			if total < best {
				best = total
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, make([]core.Edge, 0, n-1))

	return best
}

// treeGraph rebuilds an MST as a graph so it can be checked for cycles and
// connectivity independently.
func treeGraph(t *testing.T, labels []string, mst *prim_kruskal.MST) *core.Graph {
	t.Helper()

	tg := core.NewGraph(len(labels))
	for _, l := range labels {
		require.NoError(t, tg.AddVertex(l))
	}
	for _, e := range mst.Edges {
		require.NoError(t, tg.AddEdge(e.Src, e.Des, e.Weight))
	}

	return tg
}

func TestMST_AgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		n := 4 + int(seed%3) // 4..6 vertices
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 6))},
			builder.RandomConnected(n, 4),
		)
		require.NoError(t, err)
		require.True(t, bfs.Connected(g))

		want := bruteForceMST(g)

		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err, "seed %d", seed)
		assert.Len(t, k.Edges, n-1)
		assert.Equal(t, want, k.TotalWeight, "seed %d kruskal", seed)

		for _, root := range g.Labels() {
			p, err := prim_kruskal.Prim(g, root)
			require.NoError(t, err, "seed %d root %s", seed, root)
			assert.Equal(t, want, p.TotalWeight, "seed %d prim from %s", seed, root)
		}

		// accepted edges re-validate as a tree: no cycle, spans everything
		tg := treeGraph(t, g.Labels(), k)
		cyclic, err := dfs.HasCycle(tg)
		require.NoError(t, err)
		assert.False(t, cyclic)
		assert.True(t, bfs.Connected(tg))

		ds := disjoint.New(n)
		for _, e := range k.Edges {
			assert.True(t, ds.Union(g.IndexOf(e.Src), g.IndexOf(e.Des)))
		}
	}
}
