// SPDX-License-Identifier: MIT
// Package: lvtree/generators
//
// errors.go - sentinel errors for the generators package.
//
// Error policy:
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Context is attached with %w at the failure site ("BinomialTree: ...: %w").
//   - Generators never panic on bad input; they return ErrInvalidInput.

package generators

import "errors"

// ErrInvalidInput indicates that the arguments of a generator cannot describe a
// valid graph, e.g. more node weights than nodes, or a nil graph factory.
// No graph is returned together with this error.
var ErrInvalidInput = errors.New("generators: invalid input")
