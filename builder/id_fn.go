// Package builder provides the vertex ID schemes used when constructors
// translate dense tree indices into core.Graph vertex IDs.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn maps a zero-based vertex index to its vertex ID.
// It must be pure: the same idx always yields the same string, and distinct
// indices must yield distinct IDs within the range a constructor uses.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d), d = number of decimal digits. Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Enough for binomial trees up to order 4.
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA", 702→"AAA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// HexIDFn returns the lowercase hexadecimal representation of idx,
// e.g. 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics (in the returned IDFn) if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// BinaryIDFn returns an IDFn that renders idx in base 2, left-padded with
// zeros to width digits: BinaryIDFn(3)(5) → "101".
//
// In a binomial tree of order width, a vertex's parent is its label with the
// lowest 1 cleared, and its depth is the number of 1s, so these IDs read as
// hypercube coordinates.
//
// Panics if width < 0 at construction, or (in the returned IDFn) if idx < 0
// or idx ≥ 2^width.
func BinaryIDFn(width int) IDFn {
	if width < 0 {
		panic(fmt.Sprintf("BinaryIDFn: width must be ≥ 0, got %d", width))
	}

	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("BinaryIDFn: idx must be ≥ 0, got %d", idx))
		}
		if idx>>width != 0 {
			panic(fmt.Sprintf("BinaryIDFn: idx %d does not fit in %d digits", idx, width))
		}
		s := strconv.FormatInt(int64(idx), 2)
		if len(s) >= width {
			return s // width 0 still renders idx 0 as "0"
		}

		return strings.Repeat("0", width-len(s)) + s
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// WithBinaryIDs sets the ID scheme to BinaryIDFn(width).
func WithBinaryIDs(width int) BuilderOption {
	return WithIDScheme(BinaryIDFn(width))
}
