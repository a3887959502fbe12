// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_binomial.go - implementation of BinomialTree(order, bidirectional).
//
// Contract:
//   - 0 ≤ order ≤ cfg.maxOrder (else ErrTooFewVertices / ErrBadSize).
//   - Adds 2^order vertices with IDs cfg.idFn(0..2^order-1), in index order.
//     Vertices already present in g are reused, not duplicated.
//   - Emits the 2^order-1 tree edges parent→child (parent(i) = i&(i-1)) in
//     recursive-doubling order; with bidirectional also child→parent.
//   - Node payloads: cfg.nodeWeights[i] for i < len, else cfg.nodeWeightFn(cfg.rng);
//     stored under the vertex attribute corestore.WeightKey.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Refuses to run (ErrConstructFailed) if g already holds an edge between
//     two of the tree's vertex IDs.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(order·2^order) plus O(n + Σ deg) to check the tree IDs already in g.
//   - Space: O(2^order) extra.
//
// Determinism:
//   - Same order, options and seed ⇒ identical vertices, edges, edge IDs and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/backend/corestore"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/generators"
)

// BinomialTree returns a Constructor that builds the binomial tree B_order
// into g. With bidirectional set, every edge is mirrored.
//
// Bidirectional trees need a directed graph, or an undirected multigraph
// (where the mirror becomes a parallel edge); otherwise ErrUnsupportedGraphMode.
func BinomialTree(order int, bidirectional bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate the parameter domain early to avoid partial work.
		if err := validateMin(MethodBinomialTree, order, MinOrder); err != nil {
			return err
		}
		if err := validateMax(MethodBinomialTree, order, cfg.maxOrder); err != nil {
			return err
		}
		numNodes := 1 << order
		if len(cfg.nodeWeights) > numNodes {
			return fmt.Errorf("%s: %d node weights for %d vertices: %w: %w",
				MethodBinomialTree, len(cfg.nodeWeights), numNodes, ErrBadSize, generators.ErrInvalidInput)
		}
		if bidirectional && !g.Directed() && !g.Multigraph() {
			return builderErrorf(MethodBinomialTree, ErrUnsupportedGraphMode,
				"bidirectional tree on an undirected simple graph")
		}
		if err := checkNoTreeEdges(g, cfg.idFn, numNodes); err != nil {
			return err
		}

		// Producers close over cfg; they run in the generator's documented order.
		useWeight := g.Weighted()
		edgeWeight := func() float64 {
			if useWeight {
				return cfg.weightFn(cfg.rng)
			}
			return 0
		}
		nodeWeight := func() float64 {
			return cfg.nodeWeightFn(cfg.rng)
		}
		create := func(_, _ int) *corestore.Store[float64] {
			return corestore.Wrap[float64](g, cfg.idFn)
		}

		_, err := generators.BinomialTree[string, float64, float64](
			create, uint(order), cfg.nodeWeights, nodeWeight, edgeWeight, bidirectional)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodBinomialTree, err)
		}

		return nil
	}
}

// checkNoTreeEdges reports ErrConstructFailed if g already has an edge whose
// endpoints are both among idFn(0..n-1). Only the neighbourhoods of tree IDs
// already present in g are inspected, in index order.
// Complexity: O(n + Σ deg(tree vertex)).
func checkNoTreeEdges(g *core.Graph, idFn IDFn, n int) error {
	if g.EdgeCount() == 0 {
		return nil
	}
	ids := make([]string, n)
	inTree := make(map[string]struct{}, n)
	for i := range ids {
		ids[i] = idFn(i)
		inTree[ids[i]] = struct{}{}
	}
	for _, id := range ids {
		if !g.HasVertex(id) {
			continue
		}
		edges, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("%s: Neighbors(%s): %w", MethodBinomialTree, id, err)
		}
		for _, e := range edges {
			other := e.To
			if other == id {
				other = e.From
			}
			if _, ok := inTree[other]; ok {
				return builderErrorf(MethodBinomialTree, ErrConstructFailed,
					"edge %s (%s→%s) already joins tree vertices", e.ID, e.From, e.To)
			}
		}
	}

	return nil
}
