// SPDX-License-Identifier: MIT

package ndarray

import "github.com/katalvlaran/vecnd/multiindex"

// Test-only bridges to the pure offset helpers.

func OffsetOf[I multiindex.Index](extents I, cells int, c I) int {
	return offsetOf(extents, cells, c)
}

func CoordinateOf[I multiindex.Index](extents I, off int) I {
	return coordinateOf(extents, off)
}

func InBoundsOf[I multiindex.Index](extents, c I) bool {
	return inBounds(extents, c)
}

func ValidateShape[I multiindex.Index](extents I, allowZero bool) (int, error) {
	return validateShape(extents, allowZero)
}
