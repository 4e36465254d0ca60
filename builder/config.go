// SPDX-License-Identifier: MIT
// File: config.go
// Role: Resolved, immutable builder configuration.
package builder

import "math/rand"

// builderConfig is what every Constructor sees. It is built once per
// BuildGraph call from the BuilderOptions.
type builderConfig struct {
	idFn     IDFn       // index → vertex label
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // edge weight source
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
