// SPDX-License-Identifier: MIT
// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks and the wgraph generate command.
//
// Components:
//
//   - BuildGraph:    the single orchestrator; creates the graph, resolves
//     options, applies constructors in order.
//   - Constructors:  Path, Cycle, Star, Complete, Wheel, Grid, RandomConnected.
//   - Options:       WithIDScheme, WithSeed, WithRand, WithWeightFn.
//   - ID schemes:    DefaultIDFn ("v0","v1",…), SymbolIDFn ("a".."z"),
//     ExcelColumnIDFn ("A".."Z","AA",…).
//   - WeightFn:      DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed produce identical graphs,
//     including vertex order and edge-list order.
//   - Idempotence: constructors skip vertices and edges already present, so
//     composing Path then Cycle over the same IDs closes the ring without
//     duplicates.
//   - Errors, not panics, for bad constructor arguments; option constructors
//     panic on meaningless input (nil functions, non-positive weights).
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.RandomConnected(20, 15),
//	)
package builder
