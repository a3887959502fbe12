// SPDX-License-Identifier: MIT
// Package: lvtree/generators
//
// pairs.go - edge snapshots by dense index and the structural fingerprint.

package generators

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// IndexPairs returns every edge of g as a dense index pair, in g's Edges()
// order. The result is a snapshot: later insertions into g do not affect it.
// Complexity: O(E) time and space.
func IndexPairs[N any](g Edger[N]) []Pair {
	return appendIndexPairs(nil, g)
}

// appendIndexPairs appends the snapshot to dst, reusing its capacity.
func appendIndexPairs[N any](dst []Pair, g Edger[N]) []Pair {
	for source, target := range g.Edges() {
		dst = append(dst, Pair{Source: g.ToIndex(source), Target: g.ToIndex(target)})
	}

	return dst
}

// ComparePairs orders pairs by Source, then Target.
func ComparePairs(a, b Pair) int {
	if c := cmp.Compare(a.Source, b.Source); c != 0 {
		return c
	}

	return cmp.Compare(a.Target, b.Target)
}

// Fingerprint returns an xxhash-64 digest of the ordered edge set of g.
//
// Two graphs get the same fingerprint iff they hold the same set of ordered
// index pairs (modulo hash collisions); enumeration order and backend type do
// not matter. Useful to compare the same build across backends or to pin a
// golden value in tests.
// Complexity: O(E log E).
func Fingerprint[N any](g Edger[N]) uint64 {
	pairs := IndexPairs(g)
	slices.SortFunc(pairs, ComparePairs)

	d := xxhash.New()
	var buf [16]byte
	for _, p := range pairs {
		binary.LittleEndian.PutUint64(buf[:8], uint64(p.Source))
		binary.LittleEndian.PutUint64(buf[8:], uint64(p.Target))
		_, _ = d.Write(buf[:]) // xxhash.Digest.Write never fails
	}

	return d.Sum64()
}
