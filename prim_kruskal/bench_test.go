// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"testing"

	"github.com/luluwu516/DataStructures/builder"
	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/prim_kruskal"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomConnected(500, 1500),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "v0")
	}
}
