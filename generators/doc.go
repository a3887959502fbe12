// Package generators provides deterministic graph generators that are generic
// over the backing graph representation.
//
// A generator never knows how nodes and edges are stored. It talks to the
// target through a small capability set (see Graph):
//
//   - NodeAdder:  insert a node carrying a weight payload, get back its handle.
//   - EdgeAdder:  insert a directed edge between two handles with a payload.
//   - EdgeLister: enumerate existing edges as (source, target) handle pairs.
//   - Indexer:    translate between opaque handles and dense indices [0, n).
//
// The graph itself is created by a caller-supplied factory that receives node
// and edge capacity hints, so the same algorithm can target an adjacency list,
// an adjacency map, a gonum graph or lvtree's core.Graph (see backend/...).
//
// Generators:
//
//	BinomialTree(create, order, weights, nodeWeight, edgeWeight, bidirectional)
//	    2^order nodes, 2^order-1 edges (doubled when bidirectional).
//	    Time O(order·2^order) with the hashed duplicate guard; Space O(2^order).
//
// Helpers:
//
//	IndexPairs(g)   - snapshot of all edges as dense index pairs.
//	Fingerprint(g)  - order-independent xxhash-64 digest of the edge set.
//
// Determinism:
//
//	For equal inputs and a backend with a stable Edges() order, nodes, edges,
//	and the sequence of calls into the weight producers are identical run to run.
//
// Errors:
//
//	ErrInvalidInput - the only failure raised by the generators themselves.
//	Failures returned by a backend's AddNode/AddEdge are wrapped with %w and
//	returned unchanged in meaning.
package generators
