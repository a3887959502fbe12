// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors in BuildGraph to assemble fixtures deterministically.
//   - Use WithSeed(...) to freeze stochastic edge/node weights.
//   - WithIDScheme(...) (or WithBinaryIDs) for human-readable vertex IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrBadSize, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn.
//   - Emit edges in a stable, documented order.
//   - Honor core flags (Directed/Weighted/Loops/Multigraph) without silent degrade.
//   - Return only sentinel errors; NEVER panic at runtime.

// BinomialTree builds the binomial tree B_order (2^order vertices, parent→child
// edges; mirrored as well when bidirectional).
// Complexity: O(order·2^order) time, O(2^order) extra space.
//func BinomialTree(order int, bidirectional bool) Constructor

// BuildBinomialTree is a thin helper: resolve cfg and run BinomialTree(...)
// against an existing g. It returns sentinel errors; it never panics.
// Complexity: O(len(opts)) + cost of the BinomialTree constructor.
func BuildBinomialTree(g *core.Graph, order int, bidirectional bool, opts ...BuilderOption) error {
	cfg := newBuilderConfig(opts...)

	if g == nil {
		return fmt.Errorf("BuildBinomialTree: nil graph: %w", ErrConstructFailed)
	}

	return BinomialTree(order, bidirectional)(g, cfg)
}
