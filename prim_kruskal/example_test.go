// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/prim_kruskal"
)

func exampleGraph() *core.Graph {
	g := core.NewGraph(5)
	for _, l := range []string{"a", "b", "c", "d", "e"} {
		_ = g.AddVertex(l)
	}
	_ = g.AddEdge("a", "b", 3)
	_ = g.AddEdge("a", "d", 5)
	_ = g.AddEdge("a", "e", 2)
	_ = g.AddEdge("b", "c", 6)
	_ = g.AddEdge("c", "e", 4)
	_ = g.AddEdge("d", "e", 1)

	return g
}

// ExampleKruskal prints the tree edges in acceptance order.
func ExampleKruskal() {
	mst, err := prim_kruskal.Kruskal(exampleGraph())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range mst.Edges {
		fmt.Println(e)
	}
	fmt.Println("total", mst.TotalWeight)
	// Output:
	// d-e 1
	// a-e 2
	// a-b 3
	// c-e 4
	// total 10
}

// ExamplePrim grows the tree from "a".
func ExamplePrim() {
	mst, err := prim_kruskal.Prim(exampleGraph(), "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range mst.Edges {
		fmt.Println(e)
	}
	fmt.Println("total", mst.TotalWeight)
	// Output:
	// a-e 2
	// e-d 1
	// a-b 3
	// e-c 4
	// total 10
}
