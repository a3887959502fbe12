// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// options.go - functional options for builderConfig.
//
// Contract:
//   • Option constructors validate their arguments eagerly and panic on
//     meaningless input (nil functions, negative bounds). Constructors
//     themselves never panic.
//   • Options are applied in order; the last one wins.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption mutates builderConfig before a constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID strategy.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r as the shared random stream for weight functions.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed. Each resolved config gets
// its own stream, so concurrent builds never share RNG state.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator (weighted graphs only).
// Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithNodeWeights supplies payloads for the first len(ws) tree nodes, in
// index order. The slice is copied. NaN/Inf values panic.
func WithNodeWeights(ws ...float64) BuilderOption {
	for i, w := range ws {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			panic(fmt.Sprintf("builder: WithNodeWeights: weight %d is %g", i, w))
		}
	}
	cp := append([]float64(nil), ws...)
	return func(c *builderConfig) {
		c.nodeWeights = cp
	}
}

// WithNodeWeightFn sets the payload generator for nodes not covered by
// WithNodeWeights. It draws from the config RNG like WithWeightFn.
// Panics if fn is nil.
func WithNodeWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.nodeWeightFn = fn
	}
}

// WithMaxOrder raises or lowers the largest order BinomialTree accepts.
// Panics unless 0 ≤ k ≤ MaxOrderLimit.
func WithMaxOrder(k int) BuilderOption {
	if k < 0 || k > MaxOrderLimit {
		panic(fmt.Sprintf("builder: WithMaxOrder(%d) outside [0,%d]", k, MaxOrderLimit))
	}
	return func(c *builderConfig) {
		c.maxOrder = k
	}
}
