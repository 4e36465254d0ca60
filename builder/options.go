// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options; constructors panic on meaningless input.
package builder

import "math/rand"

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → label function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight source. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSymbolIDs labels vertices "a", "b", … (at most 26 vertices).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs labels vertices "A".."Z","AA",….
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }
