// SPDX-License-Identifier: MIT
// Package generators_test contains fixtures for the generators tests.
//
// Purpose:
//   - Provide a minimal slice-backed backend that records every call.
//   - Provide a failing backend to exercise error propagation.

package generators_test

import (
	"errors"
	"iter"

	"github.com/katalvlaran/lvtree/generators"
)

// errBackend is returned by failGraph once its budget is spent.
var errBackend = errors.New("backend: refused")

// listGraph stores nodes and edges in insertion order. Handles are indices.
type listGraph[T, M any] struct {
	nodeHint, edgeHint int

	nodes   []T
	edges   []generators.Pair
	weights []M
}

// newListGraph is a create factory recording the hints it was called with.
func newListGraph[T, M any](nodeHint, edgeHint int) *listGraph[T, M] {
	return &listGraph[T, M]{
		nodeHint: nodeHint,
		edgeHint: edgeHint,
		nodes:    make([]T, 0, nodeHint),
		edges:    make([]generators.Pair, 0, edgeHint),
	}
}

func (g *listGraph[T, M]) AddNode(weight T) (int, error) {
	g.nodes = append(g.nodes, weight)
	return len(g.nodes) - 1, nil
}

func (g *listGraph[T, M]) AddEdge(source, target int, weight M) error {
	g.edges = append(g.edges, generators.Pair{Source: source, Target: target})
	g.weights = append(g.weights, weight)
	return nil
}

func (g *listGraph[T, M]) Edges() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, e := range g.edges {
			if !yield(e.Source, e.Target) {
				return
			}
		}
	}
}

func (g *listGraph[T, M]) ToIndex(node int) int    { return node }
func (g *listGraph[T, M]) FromIndex(index int) int { return index }

// seededList returns a create factory whose graph already holds the given
// edges, each with weight -1, before the generator adds any node.
func seededList(seed ...generators.Pair) func(nodeHint, edgeHint int) *listGraph[int, int] {
	return func(nodeHint, edgeHint int) *listGraph[int, int] {
		g := newListGraph[int, int](nodeHint, edgeHint)
		for _, p := range seed {
			_ = g.AddEdge(p.Source, p.Target, -1)
		}
		return g
	}
}

// failGraph wraps listGraph and fails after nodeBudget nodes or edgeBudget
// edges (negative budget means unlimited).
type failGraph struct {
	*listGraph[int, int]
	nodeBudget int
	edgeBudget int
}

func (g *failGraph) AddNode(weight int) (int, error) {
	if g.nodeBudget == 0 {
		return -1, errBackend
	}
	g.nodeBudget--
	return g.listGraph.AddNode(weight)
}

func (g *failGraph) AddEdge(source, target, weight int) error {
	if g.edgeBudget == 0 {
		return errBackend
	}
	g.edgeBudget--
	return g.listGraph.AddEdge(source, target, weight)
}

// counter returns a producer yielding start, start+1, ... and a pointer to
// the number of calls made so far.
func counter(start int) (func() int, *int) {
	calls := 0
	return func() int {
		v := start + calls
		calls++
		return v
	}, &calls
}

// buildList runs BinomialTree on a fresh listGraph with counting producers.
func buildList(order uint, weights []int, bidirectional bool) (*listGraph[int, int], error) {
	nodeW, _ := counter(100)
	edgeW, _ := counter(1000)
	return generators.BinomialTree[int](newListGraph[int, int], order, weights, nodeW, edgeW, bidirectional)
}
