// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense is the single row-major buffer behind core.Graph's weight matrix.
//   - Explicit redimensioning (Grow / RemoveIndex) keeps the buffer packed at n*n.
//
// Determinism:
//   - Every loop walks rows then columns in ascending order.

package matrix

import "fmt"

// Dense is a square matrix of int64 values stored row-major in a flat slice.
// n is the order; data holds exactly n*n cells (cap may be larger after Reserve).
type Dense struct {
	n    int     // order (rows == cols)
	data []int64 // flat backing storage, len == n*n
}

// NewDense creates an order×order Dense initialized to zeros.
// An order of 0 is valid and yields an empty matrix ready to Grow.
//
// Errors:
//   - ErrBadShape if order < 0.
//
// Complexity: O(order²) time and memory.
func NewDense(order int) (*Dense, error) {
	if order < 0 {
		return nil, matrixErrorf("NewDense", fmt.Errorf("%w: order %d", ErrBadShape, order))
	}

	return &Dense{n: order, data: make([]int64, order*order)}, nil
}

// Reserve ensures the backing slice can hold a matrix of the given order
// without reallocating. It never changes Order().
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (capacity < 0).
//
// Complexity: O(capacity²) when it reallocates, O(1) otherwise.
func (m *Dense) Reserve(capacity int) error {
	if m == nil {
		return matrixErrorf("Reserve", ErrNilMatrix)
	}
	if capacity < 0 {
		return matrixErrorf("Reserve", fmt.Errorf("%w: capacity %d", ErrBadShape, capacity))
	}
	need := capacity * capacity
	if cap(m.data) >= need {
		return nil
	}
	buf := make([]int64, len(m.data), need)
	copy(buf, m.data)
	m.data = buf

	return nil
}

// Order returns the number of rows (== columns).
func (m *Dense) Order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// index validates (row, col) and returns the flat offset.
func (m *Dense) index(tag string, row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(tag, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", tag, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col).
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.index("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.index("Set", row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// SetSymmetric writes v at both (i, j) and (j, i).
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) SetSymmetric(i, j int, v int64) error {
	a, err := m.index("SetSymmetric", i, j)
	if err != nil {
		return err
	}
	b := j*m.n + i
	m.data[a] = v
	m.data[b] = v

	return nil
}

// Row returns a copy of row i.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(n).
func (m *Dense) Row(i int) ([]int64, error) {
	off, err := m.index("Row", i, 0)
	if err != nil {
		return nil, err
	}
	out := make([]int64, m.n)
	copy(out, m.data[off:off+m.n])

	return out, nil
}

// Grow increases the order by one, preserving every existing cell and
// zero-filling the new last row and column.
//
// Implementation:
//   - Stage 1: Allocate (or reuse reserved capacity for) (n+1)² cells.
//   - Stage 2: Move rows from last to first so in-place reuse never overwrites
//     a row before it is copied.
//   - Stage 3: Zero the new column of every row and the whole new row.
//
// Complexity: O(n²).
func (m *Dense) Grow() error {
	if m == nil {
		return matrixErrorf("Grow", ErrNilMatrix)
	}
	old := m.n
	next := old + 1
	need := next * next

	var buf []int64
	if cap(m.data) >= need {
		buf = m.data[:need]
	} else {
		buf = make([]int64, need)
		copy(buf, m.data) // rows are re-packed below
	}

	var i, j int
	for i = old - 1; i >= 0; i-- {
		// row i moves from offset i*old to i*next; walk columns backwards
		// because the destination is never before the source.
		for j = old - 1; j >= 0; j-- {
			buf[i*next+j] = buf[i*old+j]
		}
		buf[i*next+old] = 0
	}
	for j = 0; j < next; j++ {
		buf[old*next+j] = 0
	}

	m.n = next
	m.data = buf

	return nil
}

// RemoveIndex deletes row k and column k, shifting every higher index down by one.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(n²), no allocation (the buffer is compacted in place).
func (m *Dense) RemoveIndex(k int) error {
	if m == nil {
		return matrixErrorf("RemoveIndex", ErrNilMatrix)
	}
	if k < 0 || k >= m.n {
		return fmt.Errorf("RemoveIndex(%d): %w", k, ErrOutOfRange)
	}

	old := m.n
	next := old - 1
	w := 0
	var i, j int
	for i = 0; i < old; i++ {
		if i == k {
			continue
		}
		for j = 0; j < old; j++ {
			if j == k {
				continue
			}
			m.data[w] = m.data[i*old+j] // w never overtakes the read cursor
			w++
		}
	}

	m.n = next
	m.data = m.data[:next*next]

	return nil
}

// Clone returns a deep copy of m.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// Equal reports whether a and b have the same order and cells.
// Complexity: O(n²).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
