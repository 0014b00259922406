// SPDX-License-Identifier: MIT

package ndarray

import "github.com/katalvlaran/vecnd/multiindex"

// inBounds reports whether every component satisfies 0 <= c[k] < extents[k].
// No coordinate is in bounds for a shape with a zero-length axis.
// Complexity: O(D).
func inBounds[I multiindex.Index](extents, c I) bool {
	for k := 0; k < len(c); k++ {
		if c[k] < 0 || c[k] >= extents[k] {
			return false
		}
	}

	return true
}

// offsetOf maps an in-bounds coordinate to its row-major offset.
// Implementation:
//   - Stage 1: start a running divisor at cells.
//   - Stage 2: for each axis k in order, divide it by extents[k] (leaving the product
//     of all later extents) and accumulate divisor*c[k].
//
// Precondition: inBounds(extents, c), which also guarantees every extent > 0.
// Complexity: O(D).
func offsetOf[I multiindex.Index](extents I, cells int, c I) int {
	div, off := cells, 0
	for k := 0; k < len(c); k++ {
		div /= extents[k]
		off += div * c[k]
	}

	return off
}

// coordinateOf inverts offsetOf for 0 <= off < cells.
// The last axis is contiguous, so components are peeled off from the end.
// Complexity: O(D).
func coordinateOf[I multiindex.Index](extents I, off int) I {
	var c I
	for k := len(c) - 1; k >= 0; k-- {
		c[k] = off % extents[k]
		off /= extents[k]
	}

	return c
}
