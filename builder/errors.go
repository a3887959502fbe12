// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w via builderErrorf; sentinel messages stay fixed.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// AI-Hints:
//   • builderErrorf(MethodBinomialTree, ErrBadSize, "order %d > %d", k, max)
//     renders "BinomialTree: order 21 > 20: builder: invalid size/length".
//   • Assert with errors.Is in tests; never compare strings.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., order) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible with
// the current core.Graph mode (e.g., a bidirectional tree on an undirected
// graph that forbids parallel edges).
// Usage: if errors.Is(err, ErrUnsupportedGraphMode) { /* switch graph mode */ }.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the constructor could not run against the
// given graph without breaking its invariants (nil graph, nil constructor, or
// pre-existing edges among the vertices it is about to wire).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates invalid sizes/lengths: an order above the configured
// ceiling, or more node weights than the tree has nodes.
// Usage: if errors.Is(err, ErrBadSize) { /* fix order or weights */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation is reserved for option values that can only be judged
// once the whole config is resolved. Per-option violations panic in WithX.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf returns "<method>: <formatted message>: <sentinel>", wrapping
// sentinel with %w.
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices       - negative order.
//    • ErrBadSize              - order above ceiling, then too many node weights.
//    • ErrUnsupportedGraphMode - then mode compatibility (directed/multi).
//    • ErrConstructFailed      - then collisions with edges already in g.
//
// 2) Backend failures from core (ErrBadWeight, ErrMultiEdgeNotAllowed, ...)
//    surface wrapped; errors.Is reaches both the builder and core sentinel.
