// SPDX-License-Identifier: MIT
// Package: lvtree/generators
//
// guard.go - duplicate-edge guard.
//
// Contract:
//   - has(p) reports whether an edge with exactly the ordered pair p exists.
//     (u,v) and (v,u) are different pairs.
//   - The membership set is seeded once from the graph's own edge listing and
//     then maintained on every successful insertion, so it answers exactly
//     what a full scan of Edges() would answer, in O(1).
//
// Complexity:
//   - seed: O(E) time, O(E) space. has/insertEdge: O(1) amortized.

package generators

import "fmt"

// edgeGuard remembers which ordered index pairs are already present.
type edgeGuard struct {
	seen map[Pair]struct{}
}

// newEdgeGuard builds a guard sized for hint edges and seeded with every edge
// already present in g.
func newEdgeGuard[N any](g Edger[N], hint int) *edgeGuard {
	if hint < 0 {
		hint = 0
	}
	eg := &edgeGuard{seen: make(map[Pair]struct{}, hint)}
	for _, p := range IndexPairs(g) {
		eg.seen[p] = struct{}{}
	}

	return eg
}

// has reports whether p was seeded or inserted before.
func (eg *edgeGuard) has(p Pair) bool {
	_, ok := eg.seen[p]
	return ok
}

// insertEdge adds the edge p to g unless it already exists. The weight producer is
// called only when an insertion actually happens, right before AddEdge.
func insertEdge[N, T, M any](g Graph[N, T, M], eg *edgeGuard, p Pair, weight func() M) error {
	if eg.has(p) {
		return nil
	}
	source, target := g.FromIndex(p.Source), g.FromIndex(p.Target)
	if err := g.AddEdge(source, target, weight()); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", p.Source, p.Target, err)
	}
	eg.seen[p] = struct{}{}

	return nil
}
