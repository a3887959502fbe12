// SPDX-License-Identifier: MIT
package corestore_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/backend/corestore"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/generators"
)

func TestStore_BinomialTreeDirected(t *testing.T) {
	t.Parallel()

	s, err := generators.BinomialTree[string, string, float64](
		corestore.New[string](core.WithDirected(true), core.WithWeighted()),
		3, []string{"root", "a"}, func() string { return "-" }, func() float64 { return 1.5 }, true)
	require.NoError(t, err)

	g := s.Graph()
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 14, g.EdgeCount())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7"}, g.Vertices())
	assert.True(t, g.HasEdge("0", "4"))
	assert.True(t, g.HasEdge("4", "0"))
	assert.False(t, g.HasEdge("1", "2"))

	for _, e := range g.Edges() {
		assert.Equal(t, 1.5, e.Weight)
	}

	w, ok := s.NodeWeight(0)
	require.True(t, ok)
	assert.Equal(t, "root", w)
	w, ok = s.NodeWeight(7)
	require.True(t, ok)
	assert.Equal(t, "-", w)
	_, ok = s.NodeWeight(8)
	assert.False(t, ok)
}

func TestStore_EdgesCreationOrder(t *testing.T) {
	t.Parallel()

	s, err := generators.BinomialTree[string, struct{}, float64](
		corestore.New[struct{}](core.WithDirected(true)), 2, nil, nil, nil, false)
	require.NoError(t, err)

	var got []string
	for u, v := range s.Edges() {
		got = append(got, u+"→"+v)
	}
	assert.Equal(t, []string{"0→1", "2→3", "0→2"}, got)
	assert.Equal(t, 3, s.ToIndex("3"))
	assert.Equal(t, -1, s.ToIndex("x"))
	assert.Equal(t, "", s.FromIndex(4))
	assert.Equal(t, "", s.FromIndex(-1))
}

// Edges() is scoped to the store's own vertices.
func TestStore_ScopedEdges(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("hub", "spoke", 0)
	require.NoError(t, err)

	s := corestore.Wrap[int](g, func(i int) string { return fmt.Sprintf("t%d", i) })
	for i := 0; i < 2; i++ {
		_, err = s.AddNode(i)
		require.NoError(t, err)
	}
	require.NoError(t, s.AddEdge("t0", "t1", 0))
	_, err = g.AddEdge("hub", "t0", 0)
	require.NoError(t, err)

	assert.Equal(t, []generators.Pair{{Source: 0, Target: 1}}, generators.IndexPairs[string](s))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 4, g.VertexCount())
}

func TestStore_AdoptsExistingVertex(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))

	s := corestore.Wrap[int](g, nil)
	id, err := s.AddNode(42)
	require.NoError(t, err)
	assert.Equal(t, "0", id)
	assert.Equal(t, 1, g.VertexCount())
	v, ok := g.VertexAttr("0", corestore.WeightKey)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	s := corestore.Wrap[int](core.NewGraph(), func(int) string { return "same" })
	_, err := s.AddNode(1)
	require.NoError(t, err)
	_, err = s.AddNode(2)
	require.ErrorIs(t, err, corestore.ErrDuplicateID)

	empty := corestore.Wrap[int](core.NewGraph(), func(int) string { return "" })
	_, err = empty.AddNode(1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	// Undirected simple graph: the mirror is a parallel edge.
	_, err = generators.BinomialTree[string, int, float64](corestore.New[int](), 1, nil, nil, nil, true)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Unweighted graph rejects non-zero edge weights.
	_, err = generators.BinomialTree[string, int, float64](corestore.New[int](), 1, nil, nil,
		func() float64 { return 1 }, false)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestView(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("b", "a", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 0)
	require.NoError(t, err)

	v := corestore.View[any](g)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []generators.Pair{{Source: 0, Target: 1}, {Source: 1, Target: 2}}, generators.IndexPairs[string](v))
	assert.Equal(t, -1, v.ToIndex("zz"))
	assert.Equal(t, "", v.FromIndex(3))

	// The view follows the graph: later vertices and edges show up.
	_, err = g.AddEdge("c", "d", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 3, v.ToIndex("d"))
	assert.Equal(t, "d", v.FromIndex(3))
	assert.Len(t, generators.IndexPairs[string](v), 3)

	// AddNode through a view names the vertex after core's next index.
	id, err := v.AddNode("payload")
	require.NoError(t, err)
	assert.Equal(t, "4", id)
	w, ok := v.NodeWeight(4)
	require.True(t, ok)
	assert.Equal(t, "payload", w)

	require.NoError(t, g.AddVertex("6"))
	_, err = v.AddNode(nil) // next ID is "6", already taken
	require.ErrorIs(t, err, corestore.ErrDuplicateID)
}

// TestView_GeneratorIntoEmptyGraph runs the generator through a view, so the
// tree's dense indices are exactly core's vertex indices.
func TestView_GeneratorIntoEmptyGraph(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true))
	create := func(_, _ int) *corestore.Store[float64] { return corestore.View[float64](g) }
	v, err := generators.BinomialTree[string, float64, float64](create, 3, []float64{9}, nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	for i := 0; i < 8; i++ {
		id, ok := g.VertexAt(i)
		require.True(t, ok)
		assert.Equal(t, i, v.ToIndex(id))
	}
	w, ok := v.NodeWeight(0)
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	assert.Equal(t, generators.Fingerprint[string](v),
		generators.Fingerprint[string](corestore.View[float64](g)))
}
