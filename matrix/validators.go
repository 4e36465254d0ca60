// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical symmetry check shared by core.Graph's post-mutation assertion
//     and by tests.
//   - Only the strict upper triangle is scanned.

package matrix

import "fmt"

// ValidateSymmetric returns nil iff m[i][j] == m[j][i] for all i < j.
// The first offending pair is reported in the wrapped ErrAsymmetry.
//
// Errors: ErrNilMatrix, ErrAsymmetry.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	n := m.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%d vs (%d,%d)=%d: %w",
					i, j, m.data[i*n+j], j, i, m.data[j*n+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsSymmetric is the boolean form of ValidateSymmetric (nil ⇒ false).
func IsSymmetric(m *Dense) bool {
	return ValidateSymmetric(m) == nil
}
