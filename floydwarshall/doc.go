// SPDX-License-Identifier: MIT
// Package floydwarshall computes all-pairs shortest paths over a core.Graph.
//
// Compute copies the graph's weight matrix, turns it into a distance matrix
// (0 on the diagonal, matrix.Inf where no edge exists) and runs the classic
// k → i → j relaxation in place via matrix.FloydWarshall. Addition is guarded
// against int64 overflow; there is no negative-cycle detection because
// core.Graph only admits positive weights.
//
// Queries translate matrix.Inf to Unreachable (-1):
//
//	res, _ := floydwarshall.Compute(g)
//	row, _ := res.From("a")       // distances a → every vertex, in Labels order
//	d, _ := res.Between("a", "c") // a single pair
//
// FromSource is the one-shot form: compute, then return one row.
//
// Complexity: O(V³) time, O(V²) space.
package floydwarshall
