// SPDX-License-Identifier: MIT
package floydwarshall_test

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/floydwarshall"
)

// ExampleFromSource queries one row of the all-pairs table.
func ExampleFromSource() {
	g := core.NewGraph(4)
	for _, l := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(l)
	}
	_ = g.AddEdge("a", "b", 4)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("a", "c", 7)

	row, err := floydwarshall.FromSource(g, "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(row)
	// Output: [0 4 5 -1]
}
