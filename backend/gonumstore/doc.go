// Package gonumstore runs generators against gonum's simple.DirectedGraph.
//
// Node handles are gonum node IDs (int64) allocated densely from zero, so a
// handle converts to its dense index by a plain conversion. Payloads travel
// inside the graph values themselves: Node[T] carries the node weight and
// Edge[M] the edge weight, both satisfying gonum's graph.Node / graph.Edge.
//
// gonum panics on self-loops and silently replaces existing edges; Store
// checks for both first and returns ErrSelfLoop / ErrEdgeExists instead.
package gonumstore
