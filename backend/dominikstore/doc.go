// Package dominikstore runs generators against github.com/dominikbraun/graph.
//
// Store wraps a directed graph.Graph[int, Vertex[T]] whose hash is the dense node
// index. Node payloads are part of the vertex value, edge payloads are kept in
// graph.EdgeProperties.Data. The wrapped graph is exposed through Graph(), so
// the library's own algorithms (TopologicalSort, BFS, ShortestPath, ...) can
// be applied to a generated structure directly.
package dominikstore
