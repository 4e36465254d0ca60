// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luluwu516/DataStructures/builder"
	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/dfs"
)

// ringWithChord is C5 over a..e plus a-c.
func ringWithChord(t testing.TB) *core.Graph {
	t.Helper()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(5))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("a", "c", 7))

	return g
}

func TestDFS_PreOrderLowestIndexFirst(t *testing.T) {
	res, err := dfs.DFS(ringWithChord(t), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "e": 4}, res.Depth)
	assert.Equal(t, "d", res.Parent["e"])
	_, hasParent := res.Parent["a"]
	assert.False(t, hasParent)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "a")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := ringWithChord(t)
	_, err = dfs.DFS(g, "zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	stop := errors.New("stop")
	res, err := dfs.DFS(g, "a", dfs.WithOnVisit(func(l string) error {
		if l == "c" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"a", "b", "c"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "a", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := ringWithChord(t)
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	require.NoError(t, g.AddEdge("x", "y", 2))

	single, err := dfs.DFS(g, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, single.Order)

	full, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "x", "y"}, full.Order)
	assert.Equal(t, 0, full.Depth["x"])
}

func TestDFS_FullTraversalFromStart(t *testing.T) {
	g := ringWithChord(t)
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	require.NoError(t, g.AddEdge("x", "y", 2))

	res, err := dfs.DFS(g, "c", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b", "e", "d", "x", "y"}, res.Order)
	assert.Equal(t, 0, res.Depth["c"])

	res, err = dfs.DFS(g, "y", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x", "a", "b", "c", "d", "e"}, res.Order)

	_, err = dfs.DFS(g, "nosuch", dfs.WithFullTraversal())
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestHasCycle(t *testing.T) {
	has, err := dfs.HasCycle(ringWithChord(t))
	require.NoError(t, err)
	assert.True(t, has)

	tree, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)
	require.NoError(t, tree.AddVertex("lone"))
	has, err = dfs.HasCycle(tree)
	require.NoError(t, err)
	assert.False(t, has)

	tri, err := builder.BuildGraph(nil, nil, builder.Path(4), builder.Cycle(3))
	require.NoError(t, err)
	has, err = dfs.HasCycle(tri)
	require.NoError(t, err)
	assert.True(t, has, "v0-v1-v2 closes a triangle")

	has, err = dfs.HasCycle(nil)
	require.NoError(t, err)
	assert.False(t, has)
}
