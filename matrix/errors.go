// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." so the source is obvious in logs.
// Methods wrap these with call-site context via matrixErrorf; callers match
// with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *Dense was used as receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested order or capacity is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAsymmetry signals that a matrix required to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)

// matrixErrorf wraps err with the operation tag, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
