// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) kernel with deterministic k → i → j loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Inf means "no path"; the diagonal must be 0 before calling FloydWarshall.
//   - No negative-cycle detection: weights stored by core.Graph are positive.

package matrix

import "math"

// Inf is the distance used for "no path".
const Inf int64 = math.MaxInt64

// Operation name constants for unified error wrapping.
const (
	opInitDistances = "InitDistances"
	opFloydWarshall = "FloydWarshall"
)

// InitDistances converts a weight matrix into a distance matrix in place:
//
//	diagonal = 0; off-diagonal 0 -> Inf; non-zero -> unchanged.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func InitDistances(m *Dense) error {
	if m == nil {
		return matrixErrorf(opInitDistances, ErrNilMatrix)
	}
	n := m.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				m.data[i*n+j] = 0
			case m.data[i*n+j] == 0:
				m.data[i*n+j] = Inf
			}
		}
	}

	return nil
}

// FloydWarshall runs the all-pairs shortest-path closure on m in place:
//
//	for k, i, j: d[i][j] = min(d[i][j], d[i][k] + d[k][j])
//
// Sums that would overflow int64 are treated as Inf, so an Inf leg never
// produces a finite candidate.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(n³), extra space O(1), no allocations in the hot loop.
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}

	n := m.n
	data := m.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf || kj > Inf-ik {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
