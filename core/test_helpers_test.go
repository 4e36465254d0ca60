// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/matrix"
)

// pentagonEdges is the reference graph used throughout the package docs:
//
//	 a ──3── b ──6── c
//	 │ \             /
//	 5   2         4
//	 │     \     /
//	 d ──1── e ─
var pentagonEdges = []core.Edge{
	{Src: "a", Des: "b", Weight: 3},
	{Src: "a", Des: "d", Weight: 5},
	{Src: "a", Des: "e", Weight: 2},
	{Src: "b", Des: "c", Weight: 6},
	{Src: "c", Des: "e", Weight: 4},
	{Src: "d", Des: "e", Weight: 1},
}

// buildPentagon returns the five-vertex reference graph.
func buildPentagon(t *testing.T) *core.Graph {
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

// rows materializes a matrix as [][]int64 for readable assertions.
func rows(t *testing.T, m *matrix.Dense) [][]int64 {
	t.Helper()

	out := make([][]int64, m.Order())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}
