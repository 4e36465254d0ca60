// SPDX-License-Identifier: MIT
// File: weight_fn.go
// Role: Edge weight distributions. Weights are always ≥ 1 because
// core.Graph rejects non-positive weights.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces the next edge weight. It must be deterministic for a given
// RNG state; rng may be nil for non-stochastic builds.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always yields DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly from [min, max]. Panics unless
// 1 ≤ min ≤ max. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
