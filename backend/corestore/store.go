// SPDX-License-Identifier: MIT
// Package: lvtree/backend/corestore
//
// store.go - Store[T], a generators.Graph[string, T, float64] over core.Graph.
//
// Determinism:
//   - Node i gets ID idFn(i); Edges() follows core's creation order.

package corestore

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/lvtree/core"
)

// WeightKey is the vertex attribute under which node payloads are stored.
const WeightKey = "weight"

// ErrDuplicateID is returned by AddNode when the ID scheme yields an ID the
// store already owns.
var ErrDuplicateID = errors.New("corestore: duplicate vertex ID")

// DecimalID is the default ID scheme: "0", "1", "2", ...
func DecimalID(i int) string { return strconv.Itoa(i) }

// Store addresses a run of core.Graph vertices by dense index.
type Store[T any] struct {
	g     *core.Graph
	idFn  func(int) string
	ids   []string       // dense index → vertex ID
	index map[string]int // vertex ID → dense index

	// live stores (View) own the whole graph and delegate indexing to core.
	live bool
}

// New returns a factory suitable as a generator's create argument. Each call
// builds a fresh core.Graph with opts plus core.WithCapacity(nodeHint, edgeHint)
// and wraps it with the decimal ID scheme.
func New[T any](opts ...core.GraphOption) func(nodeHint, edgeHint int) *Store[T] {
	return func(nodeHint, edgeHint int) *Store[T] {
		all := make([]core.GraphOption, 0, len(opts)+1)
		all = append(all, opts...)
		all = append(all, core.WithCapacity(max(nodeHint, 0), max(edgeHint, 0)))

		return Wrap[T](core.NewGraph(all...), DecimalID)
	}
}

// Wrap returns an empty store over g. New nodes get IDs from idFn (DecimalID
// when nil). A vertex that already exists in g under a generated ID is
// adopted rather than duplicated.
func Wrap[T any](g *core.Graph, idFn func(int) string) *Store[T] {
	if idFn == nil {
		idFn = DecimalID
	}

	return &Store[T]{g: g, idFn: idFn, index: make(map[string]int)}
}

// View returns a store over the whole of g: its dense index is core's vertex
// insertion index (core.Graph.VertexIndex / VertexAt), so vertices added to g
// later, by anyone, are visible too. Intended for inspection (Edges,
// treecheck); AddNode names the new vertex DecimalID(VertexCount()).
func View[T any](g *core.Graph) *Store[T] {
	return &Store[T]{g: g, idFn: DecimalID, live: true}
}

// Graph returns the underlying core graph.
func (s *Store[T]) Graph() *core.Graph { return s.g }

// Len returns the number of nodes owned by the store.
func (s *Store[T]) Len() int {
	if s.live {
		return s.g.VertexCount()
	}

	return len(s.ids)
}

// AddNode registers the next vertex and stores weight as its WeightKey attribute.
func (s *Store[T]) AddNode(weight T) (string, error) {
	if s.live {
		return s.addLive(weight)
	}
	i := len(s.ids)
	id := s.idFn(i)
	if _, dup := s.index[id]; dup {
		return "", fmt.Errorf("AddNode(%d): id %q: %w", i, id, ErrDuplicateID)
	}
	if err := s.g.AddVertex(id); err != nil {
		return "", fmt.Errorf("AddNode(%d): %w", i, err)
	}
	if err := s.g.SetVertexAttr(id, WeightKey, weight); err != nil {
		return "", fmt.Errorf("AddNode(%d): %w", i, err)
	}
	s.index[id] = i
	s.ids = append(s.ids, id)

	return id, nil
}

// addLive appends a vertex to the viewed graph; an existing ID is a duplicate.
func (s *Store[T]) addLive(weight T) (string, error) {
	i := s.g.VertexCount()
	id := s.idFn(i)
	if s.g.HasVertex(id) {
		return "", fmt.Errorf("AddNode(%d): id %q: %w", i, id, ErrDuplicateID)
	}
	if err := s.g.AddVertex(id); err != nil {
		return "", fmt.Errorf("AddNode(%d): %w", i, err)
	}
	if err := s.g.SetVertexAttr(id, WeightKey, weight); err != nil {
		return "", fmt.Errorf("AddNode(%d): %w", i, err)
	}

	return id, nil
}

// AddEdge adds source→target to the core graph with weight.
func (s *Store[T]) AddEdge(source, target string, weight float64) error {
	if _, err := s.g.AddEdge(source, target, weight); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", source, target, err)
	}

	return nil
}

// Edges yields the core edges between owned vertices in creation order.
func (s *Store[T]) Edges() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range s.g.Edges() {
			if !s.owns(e.From) || !s.owns(e.To) {
				continue
			}
			if !yield(e.From, e.To) {
				return
			}
		}
	}
}

// ToIndex returns the dense index of id, or -1 if the store does not own it.
func (s *Store[T]) ToIndex(id string) int {
	if s.live {
		i, _ := s.g.VertexIndex(id)
		return i
	}
	if i, ok := s.index[id]; ok {
		return i
	}

	return -1
}

// FromIndex returns the vertex ID at index i, or "" when out of range.
func (s *Store[T]) FromIndex(i int) string {
	if s.live {
		id, _ := s.g.VertexAt(i)
		return id
	}
	if i < 0 || i >= len(s.ids) {
		return ""
	}

	return s.ids[i]
}

// NodeWeight returns the payload of node i. ok is false when i is out of
// range or the stored attribute is not a T.
func (s *Store[T]) NodeWeight(i int) (T, bool) {
	var zero T
	id := s.FromIndex(i)
	if id == "" {
		return zero, false
	}
	v, ok := s.g.VertexAttr(id, WeightKey)
	if !ok {
		return zero, false
	}
	w, ok := v.(T)

	return w, ok
}

func (s *Store[T]) owns(id string) bool {
	if s.live {
		return s.g.HasVertex(id)
	}
	_, ok := s.index[id]
	return ok
}
