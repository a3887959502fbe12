// Package builder provides "functional-options"-style constructors that
// grow trees inside a core.Graph. It sits on top of the generic generators
// package: a Constructor resolves IDs, weights and randomness from a
// builderConfig and hands the work to generators.BinomialTree through the
// corestore adapter.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:        func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:         new graph + options + constructors, applied in order.
//     – BuildBinomialTree:  run BinomialTree against an existing graph.
//   - Topologies:
//     – BinomialTree(order, bidirectional): B_order on 2^order vertices.
//   - Configuration primitives:
//     – BuilderOption:      a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithIDScheme, WithWeightFn, WithNodeWeights,
//     WithNodeWeightFn, WithMaxOrder.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:        decimal strings ("0","1",…).
//     – SymbolIDFn:         single letters ("A","B",…).
//     – ExcelColumnIDFn:    spreadsheet columns ("A","Z","AA",…).
//     – HexIDFn:            lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:   prefix + decimal ("v0","v1",…).
//     – BinaryIDFn(width):  zero-padded base 2 ("000","001",…).
//   - Weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs,
//     down to edge IDs and weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrBadSize,
//     ErrUnsupportedGraphMode, ErrConstructFailed) wrapped with method context;
//     backend errors from core stay reachable through errors.Is.
//   - Each resolved config owns its RNG, so independent BuildGraph calls may
//     run concurrently.
package builder
