// SPDX-License-Identifier: MIT
package floydwarshall_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luluwu516/DataStructures/builder"
	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/dijkstra"
	"github.com/luluwu516/DataStructures/floydwarshall"
)

func pentagon(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph(5)
	for _, l := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddVertex(l))
	}
	for _, e := range []core.Edge{
		{Src: "a", Des: "b", Weight: 3},
		{Src: "a", Des: "d", Weight: 5},
		{Src: "a", Des: "e", Weight: 2},
		{Src: "b", Des: "c", Weight: 6},
		{Src: "c", Des: "e", Weight: 4},
		{Src: "d", Des: "e", Weight: 1},
	} {
		require.NoError(t, g.AddEdge(e.Src, e.Des, e.Weight))
	}

	return g
}

func TestCompute_Pentagon(t *testing.T) {
	res, err := floydwarshall.Compute(pentagon(t))
	require.NoError(t, err)

	assert.Equal(t, [][]int64{
		{0, 3, 6, 3, 2},
		{3, 0, 6, 6, 5},
		{6, 6, 0, 5, 4},
		{3, 6, 5, 0, 1},
		{2, 5, 4, 1, 0},
	}, res.Matrix())

	row, err := res.From("a")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 6, 3, 2}, row)

	d, err := res.Between("b", "d")
	require.NoError(t, err)
	assert.Equal(t, int64(6), d)
}

func TestCompute_Errors(t *testing.T) {
	_, err := floydwarshall.Compute(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrNilGraph)

	_, err = floydwarshall.FromSource(pentagon(t), "zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	res, err := floydwarshall.Compute(pentagon(t))
	require.NoError(t, err)
	_, err = res.From("zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = res.Between("a", "zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCompute_EmptyGraph(t *testing.T) {
	res, err := floydwarshall.Compute(core.NewGraph(0))
	require.NoError(t, err)
	assert.Empty(t, res.Matrix())
}

func TestFromSource_Unreachable(t *testing.T) {
	g := pentagon(t)
	require.NoError(t, g.AddVertex("f"))
	require.NoError(t, g.AddVertex("h"))
	require.NoError(t, g.AddEdge("f", "h", 9))

	row, err := floydwarshall.FromSource(g, "f")
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, -1, -1, -1, -1, 0, 9}, row)
}

// TestCompute_AgreesWithDijkstra cross-checks every row against a Dijkstra
// run from the same source on random connected and disconnected graphs.
func TestCompute_AgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 30))},
			builder.RandomConnected(15, int(seed)*3),
		)
		require.NoError(t, err)
		// split off an isolated pair to exercise unreachable cells
		require.NoError(t, g.AddVertex("x"))
		require.NoError(t, g.AddVertex("y"))
		require.NoError(t, g.AddEdge("x", "y", 4))

		fw, err := floydwarshall.Compute(g)
		require.NoError(t, err)

		for _, src := range g.Labels() {
			dj, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)
			row, err := fw.From(src)
			require.NoError(t, err)
			assert.Equal(t, dj.Dist, row, "seed %d source %s", seed, src)
		}
	}
}

// TestCompute_AgreesWithDijkstraNearOverflow uses weights whose two-hop sums
// exceed int64: both algorithms must report those targets as unreachable.
func TestCompute_AgreesWithDijkstraNearOverflow(t *testing.T) {
	huge := int64(math.MaxInt64/2 + 10)
	g := core.NewGraph(4)
	for _, l := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(l))
	}
	require.NoError(t, g.AddEdge("a", "b", huge))
	require.NoError(t, g.AddEdge("b", "c", huge))
	require.NoError(t, g.AddEdge("a", "d", 5))

	fw, err := floydwarshall.Compute(g)
	require.NoError(t, err)

	for _, src := range g.Labels() {
		dj, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)
		row, err := fw.From(src)
		require.NoError(t, err)
		assert.Equal(t, dj.Dist, row, "source %s", src)
		for i, d := range dj.Dist {
			assert.GreaterOrEqual(t, d, dijkstra.Unreachable, "source %s target %d", src, i)
		}
	}

	row, err := fw.From("a")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, huge, floydwarshall.Unreachable, 5}, row)
}
