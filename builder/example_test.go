// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/luluwu516/DataStructures/builder"
)

// ExampleBuildGraph builds a weighted 4-cycle with letter labels.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithWeightFn(builder.ConstantWeightFn(3))},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// a-b 3
	// b-c 3
	// c-d 3
	// d-a 3
}
