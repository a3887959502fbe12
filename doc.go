// Package lvtree builds binomial trees into any graph backend.
//
// What is inside?
//
//	generators/ - BinomialTree over a small set of capability interfaces
//	              (NodeAdder, EdgeAdder, EdgeLister, Indexer), plus
//	              IndexPairs and Fingerprint for comparing edge sets
//	core/       - thread-safe string-ID Graph, Vertex, Edge primitives
//	builder/    - functional-options constructors that grow trees in core
//	backend/    - adapters: corestore (core), dominikstore
//	              (dominikbraun/graph), gonumstore (gonum simple graphs)
//	treecheck/  - breadth-first verification of tree shape and layers
//	examples/   - runnable broadcast simulation
//
// A binomial tree of order k has 2^k nodes and 2^k-1 edges; node i hangs
// below i with its lowest set bit cleared, so depth(i) = popcount(i) and
// level d holds C(k, d) nodes.
//
// Quick ASCII example (B_3, parent→child):
//
//	        0
//	      / | \
//	     1  2  4
//	        |  | \
//	        3  5  6
//	              |
//	              7
//
//	go get github.com/katalvlaran/lvtree
package lvtree
