// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Pre-sized storage (WithCapacity)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Ordering:
//
//	Vertices() returns IDs in insertion order and VertexIndex/VertexAt expose
//	that order as dense indices. Edges() returns edges in creation order.
//	Both are stable for a given sequence of mutations, which is what
//	generators that address vertices by dense index rely on.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	VertexIndex(id string) (int, bool)         // O(1)
//	VertexAt(i int) (string, bool)             // O(1)
//	SetVertexAttr(id, key string, v any) error // O(1)
//	VertexAttr(id, key string) (any, bool)     // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool              // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)      // O(d·log d)
//	NeighborIDs(id string) ([]string, error)   // O(d·log d), unique
//	Vertices() []string                        // O(V)
//	Edges() []*Edge                            // O(E)
//	Degree(id string) (in, out, undirected int, err error) // O(E)
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrBadWeight           - non-zero weight on unweighted graph, or NaN/Inf
//	ErrLoopNotAllowed      - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
