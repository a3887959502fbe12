// Package treecheck provides tunable options and error definitions
// for verifying the shape of generated trees.
package treecheck

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Inspect.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("treecheck: graph is nil")

	// ErrRootOutOfRange is returned when root is not in [0, nodes).
	ErrRootOutOfRange = errors.New("treecheck: root index out of range")

	// ErrEdgeOutOfRange is returned when an edge endpoint maps outside [0, nodes).
	ErrEdgeOutOfRange = errors.New("treecheck: edge endpoint out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("treecheck: invalid option supplied")
)

// Option configures Inspect via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Inspect is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node (dense index, depth). If it
	// returns an error, the walk aborts and propagates that error.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of Inspect. Slices indexed by node have length Nodes.
//
//   - Order: nodes in visit sequence.
//   - Depth: distance from the root in the undirected view, -1 if unreached.
//   - Parent: predecessor in the BFS tree, -1 for the root and unreached nodes.
//   - Layers: Layers[d] is the number of nodes at depth d.
type Result struct {
	Nodes  int
	Root   int
	Order  []int
	Depth  []int
	Parent []int
	Layers []int

	// UndirectedEdges counts distinct unordered non-loop pairs {u,v}; a pair
	// stored in both directions counts once.
	UndirectedEdges int
	// SelfLoops counts (v,v) edges.
	SelfLoops int
	// RootDegree is the number of distinct neighbours of the root.
	RootDegree int
}

// IsTree reports whether the undirected view is a tree: every node reached
// from the root, Nodes-1 distinct undirected edges and no self-loops.
func (r *Result) IsTree() bool {
	return r.Nodes > 0 &&
		r.SelfLoops == 0 &&
		len(r.Order) == r.Nodes &&
		r.UndirectedEdges == r.Nodes-1
}

// IsBinomial reports whether the undirected view is the binomial tree B_order
// rooted at Root. Besides the cheap counts (2^order nodes, root degree order,
// layer d holding C(order, d) nodes) it checks the recursive shape: every
// subtree has 2^j nodes for some j, and its root has exactly j children whose
// subtrees hold 2^0, 2^1, ..., 2^(j-1) nodes.
//
// Complexity: O(Nodes + order²).
func (r *Result) IsBinomial(order uint) bool {
	if order >= 63 || !r.IsTree() || r.Nodes != 1<<order {
		return false
	}
	if r.RootDegree != int(order) || len(r.Layers) != int(order)+1 {
		return false
	}
	for d, c := range pascalRow(order) {
		if uint64(r.Layers[d]) != c {
			return false
		}
	}

	return r.binomialSubtrees()
}

// binomialSubtrees folds subtree sizes bottom-up along reversed visit order.
// childSizes[v] is a bitmask of the child subtree sizes seen so far; sizes
// must be distinct powers of two covering exactly size(v)-1.
func (r *Result) binomialSubtrees() bool {
	size := make([]int, r.Nodes)
	childSizes := make([]int, r.Nodes)
	for i := range size {
		size[i] = 1
	}
	for i := len(r.Order) - 1; i >= 0; i-- {
		v := r.Order[i]
		s := size[v]
		if s&(s-1) != 0 || childSizes[v] != s-1 {
			return false
		}
		p := r.Parent[v]
		if p < 0 {
			continue
		}
		if childSizes[p]&s != 0 {
			return false
		}
		childSizes[p] |= s
		size[p] += s
	}

	return true
}

// PathTo reconstructs the tree path from the root to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= r.Nodes || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("treecheck: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// pascalRow returns C(k, 0..k). Additions only, exact for k < 63.
func pascalRow(k uint) []uint64 {
	row := make([]uint64, k+1)
	row[0] = 1
	for i := uint(1); i <= k; i++ {
		for j := i; j > 0; j-- {
			row[j] += row[j-1]
		}
	}

	return row
}
