// SPDX-License-Identifier: MIT
// Package: lvtree/generators
//
// binomial_tree.go - BinomialTree generator (recursive doubling).
//
// Contract:
//   - Builds the binomial tree B_order on 2^order nodes.
//   - Unidirectional: exactly 2^order-1 edges, each parent→child.
//   - Bidirectional: every tree edge is also present reversed.
//   - No ordered pair is ever inserted twice.
//
// Complexity:
//   - Time O(order·2^order) for the doubling rounds plus O(E0) to seed the
//     duplicate guard from edges the backend already holds.
//   - Space O(2^order) for the guard and the per-round snapshot.
//
// Determinism:
//   - Nodes are inserted in index order 0..2^order-1.
//   - Edges are inserted round by round; within a round in the backend's
//     Edges() order, then the round's root link (0,n).
//   - defaultNodeWeight is called once per node beyond len(weights), in index
//     order; defaultEdgeWeight is called once per inserted edge, right before
//     the insertion.

package generators

import "fmt"

const methodBinomialTree = "BinomialTree"

// BinomialTree generates a binomial tree of the given order into a graph made
// by create.
//
// create is called exactly once with the capacity hints (2^order, 2^order-1).
// weights, when non-nil, supplies payloads for the first len(weights) nodes;
// the remaining nodes take defaultNodeWeight(). Every edge takes
// defaultEdgeWeight(). A nil producer yields the zero value of its type.
// With bidirectional set, every edge (u,v) is accompanied by (v,u).
//
// Tree shape: node i>0 is the child of i with its lowest set bit cleared, so
// round r attaches the copy rooted at 2^r directly below node 0.
//
// Errors:
//   - ErrInvalidInput if len(weights) > 2^order, or create is nil. Nothing is
//     created or mutated and the zero G is returned.
//   - Any error from the backend's AddNode/AddEdge, wrapped with %w. The
//     partially built graph is returned alongside it.
//
// 2^order must be representable as an int: order < bits.UintSize-1 is the
// caller's precondition. Callers with untrusted input should cap order first.
//
// Implementation:
//   - Stage 1: Validate weights and derive sizes.
//   - Stage 2: Create the graph and insert the nodes.
//   - Stage 3: Seed the duplicate guard and run the doubling rounds.
func BinomialTree[N, T, M any, G Graph[N, T, M]](
	create func(nodeHint, edgeHint int) G,
	order uint,
	weights []T,
	defaultNodeWeight func() T,
	defaultEdgeWeight func() M,
	bidirectional bool,
) (G, error) {
	var zero G

	// Stage 1: validation happens before anything is created.
	if create == nil {
		return zero, fmt.Errorf("%s: nil graph factory: %w", methodBinomialTree, ErrInvalidInput)
	}
	numNodes := 1 << order
	numEdges := numNodes - 1
	if len(weights) > numNodes {
		return zero, fmt.Errorf("%s: %d weights for %d nodes (order %d): %w",
			methodBinomialTree, len(weights), numNodes, order, ErrInvalidInput)
	}
	if defaultNodeWeight == nil {
		defaultNodeWeight = zeroProducer[T]
	}
	if defaultEdgeWeight == nil {
		defaultEdgeWeight = zeroProducer[M]
	}

	// Stage 2
	g := create(numNodes, numEdges)
	if err := populateNodes[N, T](g, numNodes, weights, defaultNodeWeight); err != nil {
		return g, fmt.Errorf("%s: %w", methodBinomialTree, err)
	}

	// Stage 3
	hint := numEdges
	if bidirectional {
		hint *= 2
	}
	guard := newEdgeGuard[N](g, hint)
	if err := doubleEdges[N, T, M](g, guard, order, defaultEdgeWeight, bidirectional); err != nil {
		return g, fmt.Errorf("%s: %w", methodBinomialTree, err)
	}

	return g, nil
}

// populateNodes inserts numNodes nodes in index order. Supplied weights are
// copied into the graph; the rest come from nodeWeight.
func populateNodes[N, T any](g NodeAdder[N, T], numNodes int, weights []T, nodeWeight func() T) error {
	for i := 0; i < numNodes; i++ {
		var w T
		if i < len(weights) {
			w = weights[i]
		} else {
			w = nodeWeight()
		}
		if _, err := g.AddNode(w); err != nil {
			return fmt.Errorf("AddNode(%d): %w", i, err)
		}
	}

	return nil
}

// doubleEdges runs the order doubling rounds. Round with offset n copies every
// existing edge (s,t) to (s+n,t+n) and then links 0→n. The snapshot of the
// round is taken before any of its insertions.
func doubleEdges[N, T, M any](
	g Graph[N, T, M],
	guard *edgeGuard,
	order uint,
	edgeWeight func() M,
	bidirectional bool,
) error {
	var snapshot []Pair
	n := 1
	for round := uint(0); round < order; round++ {
		snapshot = appendIndexPairs[N](snapshot[:0], g)
		for _, p := range snapshot {
			shifted := Pair{Source: p.Source + n, Target: p.Target + n}
			if err := insertEdge(g, guard, shifted, edgeWeight); err != nil {
				return err
			}
			if bidirectional {
				if err := insertEdge(g, guard, shifted.Reverse(), edgeWeight); err != nil {
					return err
				}
			}
		}

		link := Pair{Source: 0, Target: n}
		if err := insertEdge(g, guard, link, edgeWeight); err != nil {
			return err
		}
		if bidirectional {
			if err := insertEdge(g, guard, link.Reverse(), edgeWeight); err != nil {
				return err
			}
		}
		n *= 2
	}

	return nil
}

// zeroProducer stands in for a nil weight producer.
func zeroProducer[T any]() T {
	var zero T
	return zero
}
