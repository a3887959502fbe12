// SPDX-License-Identifier: MIT
// Package: lvtree/backend/gonumstore
//
// store.go - Store[T, M], a generators.Graph[int64, T, M] over gonum.
//
// Determinism:
//   - Edges() visits sources in ID order and their successors sorted by ID.

package gonumstore

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Sentinel errors for Store mutations that gonum would otherwise panic on
// or resolve silently.
var (
	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("gonumstore: self-loop not supported by simple.DirectedGraph")

	// ErrNodeNotFound indicates an edge endpoint that is not in the graph.
	ErrNodeNotFound = errors.New("gonumstore: node not found")

	// ErrNodeExists indicates that the next dense ID is already taken.
	ErrNodeExists = errors.New("gonumstore: node ID already in use")

	// ErrEdgeExists indicates that source→target is already present.
	ErrEdgeExists = errors.New("gonumstore: edge already exists")
)

// Node is a gonum graph.Node carrying a payload.
type Node[T any] struct {
	id     int64
	Weight T
}

// ID implements graph.Node.
func (n Node[T]) ID() int64 { return n.id }

// Edge is a gonum graph.Edge carrying a payload.
type Edge[M any] struct {
	F, T   graph.Node
	Weight M
}

// From implements graph.Edge.
func (e Edge[M]) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge[M]) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge.
func (e Edge[M]) ReversedEdge() graph.Edge { return Edge[M]{F: e.T, T: e.F, Weight: e.Weight} }

// Store wraps a simple.DirectedGraph with dense node IDs.
type Store[T, M any] struct {
	g *simple.DirectedGraph
	n int64
}

// New creates an empty store; it has the generators create signature.
// simple.DirectedGraph takes no capacity hints.
func New[T, M any](_, _ int) *Store[T, M] {
	return &Store[T, M]{g: simple.NewDirectedGraph()}
}

// Graph returns the underlying gonum graph.
func (s *Store[T, M]) Graph() *simple.DirectedGraph { return s.g }

// Len returns the number of nodes added through the store.
func (s *Store[T, M]) Len() int { return int(s.n) }

// AddNode inserts Node{id: next, Weight: weight}.
func (s *Store[T, M]) AddNode(weight T) (int64, error) {
	id := s.n
	if s.g.Node(id) != nil {
		return -1, fmt.Errorf("AddNode(%d): %w", id, ErrNodeExists)
	}
	s.g.AddNode(Node[T]{id: id, Weight: weight})
	s.n++

	return id, nil
}

// AddEdge inserts source→target carrying weight.
func (s *Store[T, M]) AddEdge(source, target int64, weight M) error {
	if source == target {
		return fmt.Errorf("AddEdge(%d→%d): %w", source, target, ErrSelfLoop)
	}
	from, to := s.g.Node(source), s.g.Node(target)
	if from == nil || to == nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", source, target, ErrNodeNotFound)
	}
	if s.g.HasEdgeFromTo(source, target) {
		return fmt.Errorf("AddEdge(%d→%d): %w", source, target, ErrEdgeExists)
	}
	s.g.SetEdge(Edge[M]{F: from, T: to, Weight: weight})

	return nil
}

// Edges yields every edge once, ascending by source then target.
func (s *Store[T, M]) Edges() iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		var targets []int64
		for source := int64(0); source < s.n; source++ {
			targets = targets[:0]
			succ := s.g.From(source)
			for succ.Next() {
				targets = append(targets, succ.Node().ID())
			}
			slices.Sort(targets)
			for _, target := range targets {
				if !yield(source, target) {
					return
				}
			}
		}
	}
}

// ToIndex converts a node ID to its dense index.
func (s *Store[T, M]) ToIndex(node int64) int { return int(node) }

// FromIndex converts a dense index to its node ID.
func (s *Store[T, M]) FromIndex(index int) int64 { return int64(index) }

// NodeWeight returns the payload of node id.
func (s *Store[T, M]) NodeWeight(id int64) (T, bool) {
	n, ok := s.g.Node(id).(Node[T])
	return n.Weight, ok
}

// EdgeWeight returns the payload of edge source→target.
func (s *Store[T, M]) EdgeWeight(source, target int64) (M, bool) {
	e, ok := s.g.Edge(source, target).(Edge[M])
	return e.Weight, ok
}
