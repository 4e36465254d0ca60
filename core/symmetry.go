// SPDX-License-Identifier: MIT
// File: symmetry.go
// Role: Matrix symmetry invariant.
package core

import (
	"fmt"

	"github.com/luluwu516/DataStructures/matrix"
)

// CheckSymmetry returns an error wrapping matrix.ErrAsymmetry if the weight
// matrix is not symmetric. It never panics.
// Complexity: O(n²).
func (g *Graph) CheckSymmetry() error {
	return matrix.ValidateSymmetric(g.weights)
}

// mustBeSymmetric panics if a mutation left the matrix asymmetric. Every
// public mutator ends with this call.
func (g *Graph) mustBeSymmetric(op string) {
	if err := g.CheckSymmetry(); err != nil {
		panic(fmt.Errorf("core: %s broke matrix symmetry: %w", op, err))
	}
}
