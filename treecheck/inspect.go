// Package treecheck verifies the shape of generated trees.
//
// Inspect walks the undirected view of any generators.Edger breadth-first
// from a root and reports visit order, depths, parents and layer sizes. The
// result answers "is this a tree?" and "is this the binomial tree B_k?"
// regardless of edge direction or of which backend stores the graph.
package treecheck

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtree/generators"
)

// queueItem pairs a node index with its depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	queue []queueItem
	res   *Result
}

// Inspect runs a breadth-first walk over the undirected view of g's edges,
// starting at the dense index root. nodes is the node count; every edge
// endpoint must map into [0, nodes).
//
// Returns ErrNilGraph, ErrRootOutOfRange or ErrEdgeOutOfRange for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any OnVisit error (wrapped).
//
// Validation errors come with a nil Result. A cancellation or OnVisit error
// comes with the partial Result of the walk so far: Order and Layers hold the
// nodes visited before the stop, Depth and Parent also cover nodes already
// enqueued. Partial results are not trees; IsTree reports false for them
// unless every node was visited.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func Inspect[N any](g generators.Edger[N], nodes, root int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if root < 0 || root >= nodes {
		return nil, fmt.Errorf("%w: root %d, nodes %d", ErrRootOutOfRange, root, nodes)
	}

	res := &Result{
		Nodes:  nodes,
		Root:   root,
		Order:  make([]int, 0, nodes),
		Depth:  make([]int, nodes),
		Parent: make([]int, nodes),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	adj, err := undirectedAdjacency(g, nodes, res)
	if err != nil {
		return nil, err
	}
	res.RootDegree = len(adj[root])

	w := &walker{adj: adj, opts: o, queue: make([]queueItem, 0, nodes), res: res}
	w.enqueue(root, 0, -1)

	return res, w.loop()
}

// undirectedAdjacency builds sorted neighbour lists, counting distinct
// unordered pairs and self-loops into res.
func undirectedAdjacency[N any](g generators.Edger[N], nodes int, res *Result) ([][]int, error) {
	adj := make([][]int, nodes)
	seen := make(map[generators.Pair]struct{})
	for _, p := range generators.IndexPairs(g) {
		if p.Source < 0 || p.Source >= nodes || p.Target < 0 || p.Target >= nodes {
			return nil, fmt.Errorf("%w: (%d,%d), nodes %d", ErrEdgeOutOfRange, p.Source, p.Target, nodes)
		}
		if p.Source == p.Target {
			res.SelfLoops++
			continue
		}
		key := p
		if key.Source > key.Target {
			key = key.Reverse()
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		adj[p.Source] = append(adj[p.Source], p.Target)
		adj[p.Target] = append(adj[p.Target], p.Source)
	}
	res.UndirectedEdges = len(seen)
	for _, nbrs := range adj {
		slices.Sort(nbrs)
	}

	return adj, nil
}

// enqueue records depth and parent of node and appends it to the queue.
func (w *walker) enqueue(node, depth, parent int) {
	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	w.queue = append(w.queue, queueItem{node: node, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and Layers and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if item.depth == len(w.res.Layers) {
		w.res.Layers = append(w.res.Layers, 0)
	}
	w.res.Layers[item.depth]++
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("treecheck: OnVisit error at %d: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.adj[item.node] {
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, next, item.node)
		}
	}
}
