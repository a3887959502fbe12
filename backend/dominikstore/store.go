// SPDX-License-Identifier: MIT
// Package: lvtree/backend/dominikstore
//
// store.go - Store[T, M], a generators.Graph[int, T, M] over dominikbraun/graph.
//
// Contract:
//   - Node handles are dense indices; the dominikbraun hash of a vertex is
//     its index, so handle, hash and index coincide.
//   - Edges() yields in ascending (source, target) order.
//   - Edge payloads live in EdgeProperties.Data.
//
// Complexity:
//   - AddNode/AddEdge: as dominikbraun/graph (O(1) amortized in-memory store).
//   - Edges(): O(V + E log d) per call (adjacency map snapshot plus sorting).

package dominikstore

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/dominikbraun/graph"
)

// ErrEdgeData is returned by EdgeWeight when the stored payload is not an M.
var ErrEdgeData = errors.New("dominikstore: edge payload has unexpected type")

// Vertex is the value stored in the dominikbraun graph.
type Vertex[T any] struct {
	Index  int
	Weight T
}

// VertexHash is the graph.Hash used by Store: the vertex's dense index.
func VertexHash[T any](v Vertex[T]) int { return v.Index }

// Store is a directed dominikbraun graph addressed by dense index.
type Store[T, M any] struct {
	g   graph.Graph[int, Vertex[T]]
	n   int
	err error // first enumeration failure, see Err
}

// New creates an empty directed store. It has the generators create
// signature; dominikbraun/graph takes no capacity hints, so they are ignored.
func New[T, M any](_, _ int) *Store[T, M] {
	return &Store[T, M]{g: graph.New(VertexHash[T], graph.Directed())}
}

// Graph returns the underlying dominikbraun graph, e.g. for graph.TopologicalSort.
func (s *Store[T, M]) Graph() graph.Graph[int, Vertex[T]] { return s.g }

// Len returns the number of nodes.
func (s *Store[T, M]) Len() int { return s.n }

// Err returns the first error met while enumerating edges, if any.
// Edges() cannot report errors itself; it stops early instead.
func (s *Store[T, M]) Err() error { return s.err }

// AddNode inserts a vertex with the next dense index.
func (s *Store[T, M]) AddNode(weight T) (int, error) {
	v := Vertex[T]{Index: s.n, Weight: weight}
	if err := s.g.AddVertex(v); err != nil {
		return -1, fmt.Errorf("AddVertex(%d): %w", v.Index, err)
	}
	s.n++

	return v.Index, nil
}

// AddEdge inserts source→target with weight stored as edge data.
// An existing edge yields graph.ErrEdgeAlreadyExists (wrapped).
func (s *Store[T, M]) AddEdge(source, target int, weight M) error {
	if err := s.g.AddEdge(source, target, graph.EdgeData(weight)); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", source, target, err)
	}

	return nil
}

// Edges yields every edge once, ascending by source then target.
func (s *Store[T, M]) Edges() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		adj, err := s.g.AdjacencyMap()
		if err != nil {
			if s.err == nil {
				s.err = fmt.Errorf("AdjacencyMap: %w", err)
			}
			return
		}
		targets := make([]int, 0)
		for source := 0; source < s.n; source++ {
			targets = targets[:0]
			for target := range adj[source] {
				targets = append(targets, target)
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

// ToIndex is the identity on handles.
func (s *Store[T, M]) ToIndex(node int) int { return node }

// FromIndex is the identity on indices.
func (s *Store[T, M]) FromIndex(index int) int { return index }

// NodeWeight returns the payload of node i. ok is false when i is not a node.
func (s *Store[T, M]) NodeWeight(i int) (T, bool) {
	v, err := s.g.Vertex(i)
	if err != nil {
		var zero T
		return zero, false
	}

	return v.Weight, true
}

// EdgeWeight returns the payload of edge source→target.
func (s *Store[T, M]) EdgeWeight(source, target int) (M, error) {
	var zero M
	e, err := s.g.Edge(source, target)
	if err != nil {
		return zero, fmt.Errorf("Edge(%d→%d): %w", source, target, err)
	}
	w, ok := e.Properties.Data.(M)
	if !ok {
		return zero, fmt.Errorf("Edge(%d→%d): %T: %w", source, target, e.Properties.Data, ErrEdgeData)
	}

	return w, nil
}
