// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies and read-only snapshots for algorithm packages.
package core

import "github.com/luluwu516/DataStructures/matrix"

// Clone returns a deep copy of g (labels, matrix, edge list). The clone shares
// g's logger.
// Complexity: O(n² + E).
func (g *Graph) Clone() *Graph {
	return &Graph{
		labels:  g.Labels(),
		weights: g.weights.Clone(),
		edges:   g.Edges(),
		log:     g.log,
	}
}

// Adjacency returns a copy of the weight matrix (0 = no edge). Algorithms
// read through this copy, so mutating g afterwards never affects a run
// already in progress.
// Complexity: O(n²).
func (g *Graph) Adjacency() *matrix.Dense {
	return g.weights.Clone()
}
