// SPDX-License-Identifier: MIT

package multiindex

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// MaxRank is the highest rank covered by the Index constraint.
const MaxRank = 8

// Index is satisfied by fixed-length coordinate arrays of rank 1..MaxRank.
// The same constraint describes an extents tuple (one size per axis).
type Index interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int |
		~[5]int | ~[6]int | ~[7]int | ~[8]int
}

// Dims returns the rank D of the Index type I.
// Complexity: O(1).
func Dims[I Index]() int {
	var zero I
	return len(zero)
}

// Product returns the number of tuples in the space described by extents.
// Any extent <= 0 makes the space empty and the result 0.
// The caller is responsible for shapes whose product overflows int.
// Complexity: O(D).
func Product[I Index](extents I) int {
	n := 1
	for k := 0; k < len(extents); k++ {
		if extents[k] <= 0 {
			return 0
		}
		n *= extents[k]
	}

	return n
}

// IsEmpty reports whether extents describes a space with no tuples.
func IsEmpty[I Index](extents I) bool {
	for k := 0; k < len(extents); k++ {
		if extents[k] <= 0 {
			return true
		}
	}

	return false
}

// From builds an Index value from integer components of any integral type.
// Implementation:
//   - Stage 1: the component count must equal the rank of I, else ErrArity.
//   - Stage 2: each component must be >= 0 (ErrNegative) and fit in int (ErrOverflow).
//
// Bounds against a particular shape are NOT checked here; that is the job of the
// container that owns the shape.
// Complexity: O(D).
func From[I Index, N constraints.Integer](components ...N) (I, error) {
	var c I
	if len(components) != len(c) {
		return c, fmt.Errorf("multiindex.From: got %d components, want %d: %w",
			len(components), len(c), ErrArity)
	}
	for k, v := range components {
		if v < 0 {
			return c, fmt.Errorf("multiindex.From: axis %d: %w", k, ErrNegative)
		}
		if uint64(v) > math.MaxInt {
			return c, fmt.Errorf("multiindex.From: axis %d: %w", k, ErrOverflow)
		}
		c[k] = int(v)
	}

	return c, nil
}
