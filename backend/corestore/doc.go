// Package corestore adapts a *core.Graph to the generators capability set.
//
// A Store made by New or Wrap owns a contiguous run of vertices it added
// itself (adopting any that already existed under a generated ID) and
// addresses them by dense index in insertion order. A View owns the whole
// graph and uses core's own vertex indices (VertexIndex / VertexAt). Node payloads
// are kept as the vertex attribute WeightKey; edge payloads are the core edge
// weight (float64).
//
// Edges() is scoped for New/Wrap stores: it enumerates, in core creation
// order, only the edges whose endpoints both belong to the store. Other vertices and edges of the
// same core.Graph are invisible, so a generator can run against a graph that
// already holds unrelated structure.
//
// Concurrency: a Store is not safe for concurrent mutation; the underlying
// core.Graph is.
package corestore
