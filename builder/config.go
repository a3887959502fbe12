// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn          = DefaultIDFn        ("0","1","2",...)
//   • rng           = nil                (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn    (DefaultEdgeWeight)
//   • nodeWeights   = nil                (every node takes nodeWeightFn)
//   • nodeWeightFn  = ConstantWeightFn(DefaultNodeWeight)
//   • maxOrder      = DefaultMaxOrder
//
// AI-Hints:
//   • Set WithSeed for reproducible stochastic weights.
//   • Edge weight policy matters only if the core graph is weighted.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn

	// Explicit payloads for the first len(nodeWeights) tree nodes.
	nodeWeights []float64
	// Payload generator for the remaining nodes.
	nodeWeightFn WeightFn

	// Upper bound on the order accepted by BinomialTree.
	maxOrder int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         DefaultIDFn,
		rng:          nil,
		weightFn:     DefaultWeightFn,
		nodeWeightFn: ConstantWeightFn(DefaultNodeWeight),
		maxOrder:     DefaultMaxOrder,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
