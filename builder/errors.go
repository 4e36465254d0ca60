// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates a constructor size below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates a negative count argument.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates BuildGraph was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
