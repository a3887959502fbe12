// SPDX-License-Identifier: MIT
// Package: lvtree/generators
//
// types.go - the graph capability set shared by all generators.
//
// N is the backend's node handle type, T the node payload type and M the
// edge payload type.

package generators

import "iter"

// NodeAdder inserts a node carrying weight and returns its handle.
// Handles returned by consecutive calls must map to consecutive dense indices
// starting at zero (see Indexer).
type NodeAdder[N, T any] interface {
	AddNode(weight T) (N, error)
}

// EdgeAdder inserts a directed edge source→target carrying weight.
type EdgeAdder[N, M any] interface {
	AddEdge(source, target N, weight M) error
}

// EdgeLister enumerates every stored edge exactly once as its ordered
// (source, target) pair. The order must be stable for a given graph state;
// generators derive their insertion order from it.
type EdgeLister[N any] interface {
	Edges() iter.Seq2[N, N]
}

// Indexer translates between node handles and dense indices in [0, n).
type Indexer[N any] interface {
	ToIndex(node N) int
	FromIndex(index int) N
}

// Edger is the read-only part of the capability set: enough to observe the
// edge set by dense index.
type Edger[N any] interface {
	EdgeLister[N]
	Indexer[N]
}

// Graph is the full capability set a generator needs from a backing graph.
type Graph[N, T, M any] interface {
	NodeAdder[N, T]
	EdgeAdder[N, M]
	Edger[N]
}

// Pair is an ordered edge expressed by the dense indices of its endpoints.
type Pair struct {
	Source int
	Target int
}

// Reverse returns the mirrored pair (Target, Source).
func (p Pair) Reverse() Pair { return Pair{Source: p.Target, Target: p.Source} }
