// SPDX-License-Identifier: MIT
package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/generators"
	"github.com/katalvlaran/lvtree/treecheck"
)

// pairs is shorthand for literal edge lists.
func pairs(xs ...int) []generators.Pair {
	out := make([]generators.Pair, 0, len(xs)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, generators.Pair{Source: xs[i], Target: xs[i+1]})
	}
	return out
}

func TestBinomialTree_Order4Unidirectional(t *testing.T) {
	t.Parallel()

	g, err := buildList(4, nil, false)
	require.NoError(t, err)

	require.Len(t, g.nodes, 16)
	want := pairs(
		0, 1,
		2, 3, 0, 2,
		4, 5, 6, 7, 4, 6, 0, 4,
		8, 9, 10, 11, 8, 10, 12, 13, 14, 15, 12, 14, 8, 12, 0, 8,
	)
	assert.Equal(t, want, g.edges)

	res, err := treecheck.Inspect[int](g, len(g.nodes), 0)
	require.NoError(t, err)
	assert.True(t, res.IsTree())
	assert.True(t, res.IsBinomial(4))
	assert.Equal(t, []int{1, 4, 6, 4, 1}, res.Layers)
	assert.Equal(t, 4, res.RootDegree)
}

func TestBinomialTree_Order2Bidirectional(t *testing.T) {
	t.Parallel()

	edgeW, calls := counter(0)
	g, err := generators.BinomialTree[int, string, int](newListGraph[string, int], 2, nil, nil, edgeW, true)
	require.NoError(t, err)

	assert.Equal(t, pairs(0, 1, 1, 0, 2, 3, 3, 2, 0, 2, 2, 0), g.edges)
	// Mirrored copies found in the snapshot are skipped without a weight call.
	assert.Equal(t, 6, *calls)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.weights)
}

func TestBinomialTree_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		order         uint
		bidirectional bool
		wantNodes     int
		wantEdges     int
	}{
		{"order0", 0, false, 1, 0},
		{"order0/bidir", 0, true, 1, 0},
		{"order1", 1, false, 2, 1},
		{"order1/bidir", 1, true, 2, 2},
		{"order4/bidir", 4, true, 16, 30},
		{"order10", 10, false, 1024, 1023},
		{"order10/bidir", 10, true, 1024, 2046},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := buildList(tc.order, nil, tc.bidirectional)
			require.NoError(t, err)
			assert.Len(t, g.nodes, tc.wantNodes)
			assert.Len(t, g.edges, tc.wantEdges)
			assert.Equal(t, tc.wantNodes, g.nodeHint)
			assert.Equal(t, tc.wantNodes-1, g.edgeHint)
		})
	}
}

// Every unidirectional edge is parent→child, the parent being the child with
// its lowest set bit cleared, and every non-root node has exactly one parent.
func TestBinomialTree_ParentRule(t *testing.T) {
	t.Parallel()

	for order := uint(0); order <= 9; order++ {
		g, err := buildList(order, nil, false)
		require.NoError(t, err)

		parent := make(map[int]int, len(g.edges))
		for _, e := range g.edges {
			require.Equal(t, e.Target&(e.Target-1), e.Source, "order %d edge %v", order, e)
			_, dup := parent[e.Target]
			require.False(t, dup, "order %d: node %d has two parents", order, e.Target)
			parent[e.Target] = e.Source
		}
		require.Len(t, parent, (1<<order)-1)
	}
}

func TestBinomialTree_BidirectionalMirrorsTree(t *testing.T) {
	t.Parallel()

	uni, err := buildList(6, nil, false)
	require.NoError(t, err)
	bi, err := buildList(6, nil, true)
	require.NoError(t, err)

	have := make(map[generators.Pair]bool, len(bi.edges))
	for _, e := range bi.edges {
		require.False(t, have[e], "duplicate edge %v", e)
		have[e] = true
	}
	for _, e := range uni.edges {
		assert.True(t, have[e], "missing %v", e)
		assert.True(t, have[e.Reverse()], "missing mirror of %v", e)
	}
	assert.Len(t, bi.edges, 2*len(uni.edges))
}

func TestBinomialTree_NodeWeights(t *testing.T) {
	t.Parallel()

	nodeW, calls := counter(100)
	g, err := generators.BinomialTree[int, int, struct{}](newListGraph[int, struct{}], 4, []int{0, 1, 2, 3}, nodeW, nil, false)
	require.NoError(t, err)

	want := []int{0, 1, 2, 3}
	for i := 0; i < 12; i++ {
		want = append(want, 100+i)
	}
	assert.Equal(t, want, g.nodes)
	assert.Equal(t, 12, *calls)
	assert.Len(t, g.edges, 15)
}

func TestBinomialTree_ExactWeights(t *testing.T) {
	t.Parallel()

	nodeW, calls := counter(0)
	ws := []int{7, 6, 5, 4}
	g, err := generators.BinomialTree[int, int, int](newListGraph[int, int], 2, ws, nodeW, nil, false)
	require.NoError(t, err)
	assert.Equal(t, ws, g.nodes)
	assert.Zero(t, *calls)

	// Supplied weights are copied; mutating the input later does not leak in.
	ws[0] = 99
	assert.Equal(t, 7, g.nodes[0])
}

func TestBinomialTree_EdgeWeightOrder(t *testing.T) {
	t.Parallel()

	g, err := buildList(5, nil, true)
	require.NoError(t, err)
	for i, w := range g.weights {
		require.Equal(t, 1000+i, w)
	}
}

func TestBinomialTree_NilProducers(t *testing.T) {
	t.Parallel()

	g, err := generators.BinomialTree[int, string, float64](newListGraph[string, float64], 3, []string{"root"}, nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "", "", "", "", "", "", ""}, g.nodes)
	for _, w := range g.weights {
		assert.Zero(t, w)
	}
}

func TestBinomialTree_TooManyWeights(t *testing.T) {
	t.Parallel()

	created := false
	create := func(n, e int) *listGraph[int, int] {
		created = true
		return newListGraph[int, int](n, e)
	}
	nodeW, nodeCalls := counter(0)
	edgeW, edgeCalls := counter(0)

	g, err := generators.BinomialTree[int](create, 2, []int{1, 2, 3, 4, 5}, nodeW, edgeW, false)
	require.ErrorIs(t, err, generators.ErrInvalidInput)
	assert.Nil(t, g)
	assert.False(t, created)
	assert.Zero(t, *nodeCalls)
	assert.Zero(t, *edgeCalls)

	_, err = generators.BinomialTree[int](create, 0, []int{1, 2}, nodeW, edgeW, false)
	require.ErrorIs(t, err, generators.ErrInvalidInput)
}

func TestBinomialTree_NilFactory(t *testing.T) {
	t.Parallel()

	_, err := generators.BinomialTree[int, int, int, *listGraph[int, int]](nil, 2, nil, nil, nil, false)
	require.ErrorIs(t, err, generators.ErrInvalidInput)
}

// TestBinomialTree_PreexistingEdges checks that pairs the backend already
// holds are neither inserted again nor charged a weight. They still take
// part in every round's snapshot, so their shifted copies are added.
func TestBinomialTree_PreexistingEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		order         uint
		bidirectional bool
		seed          generators.Pair
		wantEdges     []generators.Pair
		wantWeights   []int
	}{
		{
			// Round 0 copies (0,1) to (1,2) and skips its own link (0,1);
			// round 1 copies both, then links (0,2).
			name:        "unidirectional (0,1)",
			order:       2,
			seed:        generators.Pair{Source: 0, Target: 1},
			wantEdges:   pairs(0, 1, 1, 2, 2, 3, 3, 4, 0, 2),
			wantWeights: []int{-1, 1000, 1001, 1002, 1003},
		},
		{
			// Round 0 copies (1,0) both ways, links (0,1) and skips (1,0).
			name:          "bidirectional (1,0)",
			order:         1,
			bidirectional: true,
			seed:          generators.Pair{Source: 1, Target: 0},
			wantEdges:     pairs(1, 0, 2, 1, 1, 2, 0, 1),
			wantWeights:   []int{-1, 1000, 1001, 1002},
		},
		{
			// Order 0 runs no round: the seeded graph is returned as is.
			name:        "order 0",
			order:       0,
			seed:        generators.Pair{Source: 0, Target: 0},
			wantEdges:   pairs(0, 0),
			wantWeights: []int{-1},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edgeW, calls := counter(1000)
			g, err := generators.BinomialTree[int, int, int](seededList(tc.seed), tc.order, nil, nil, edgeW, tc.bidirectional)
			require.NoError(t, err)

			assert.Equal(t, tc.wantEdges, g.edges)
			assert.Equal(t, tc.wantWeights, g.weights)
			assert.Equal(t, len(tc.wantEdges)-1, *calls, "one producer call per inserted edge")

			seen := 0
			for _, e := range g.edges {
				if e == tc.seed {
					seen++
				}
			}
			assert.Equal(t, 1, seen, "seeded pair stored once")
		})
	}
}

func TestBinomialTree_BackendErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		nodeBudget int
		edgeBudget int
		wantNodes  int
		wantEdges  int
	}{
		{"node", 2, -1, 2, 0},
		{"edge", -1, 3, 8, 3},
		{"first edge", -1, 0, 8, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			create := func(n, e int) *failGraph {
				return &failGraph{listGraph: newListGraph[int, int](n, e), nodeBudget: tc.nodeBudget, edgeBudget: tc.edgeBudget}
			}
			g, err := generators.BinomialTree[int, int, int](create, 3, nil, nil, nil, false)
			require.ErrorIs(t, err, errBackend)
			assert.NotErrorIs(t, err, generators.ErrInvalidInput)
			require.NotNil(t, g)
			assert.Len(t, g.nodes, tc.wantNodes)
			assert.Len(t, g.edges, tc.wantEdges)
		})
	}
}

func TestBinomialTree_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := buildList(7, []int{1, 2, 3}, true)
	require.NoError(t, err)
	b, err := buildList(7, []int{1, 2, 3}, true)
	require.NoError(t, err)

	assert.Equal(t, a.nodes, b.nodes)
	assert.Equal(t, a.edges, b.edges)
	assert.Equal(t, a.weights, b.weights)
	assert.Equal(t, generators.Fingerprint[int](a), generators.Fingerprint[int](b))
}
