// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for the construction-time policy flags.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; getters still take muVert for a
//     consistent view under the race detector.

package core

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Gate weighted algorithms by g.Weighted() before reading edge.Weight.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are directed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
// If false, a second AddEdge(from,to,...) returns ErrMultiEdgeNotAllowed.
// In an undirected simple graph this also covers the reverse pair, since
// undirected edges are mirrored in adjacency.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
