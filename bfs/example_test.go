// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/luluwu516/DataStructures/bfs"
	"github.com/luluwu516/DataStructures/builder"
)

// ExampleBFS walks a star from its hub.
func ExampleBFS() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(4))

	res, err := bfs.BFS(g, "v0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["v3"])
	// Output:
	// [v0 v1 v2 v3]
	// 1
}
