// SPDX-License-Identifier: MIT

package ndarray

import (
	"math"

	"github.com/katalvlaran/vecnd/multiindex"
)

// Shape is implemented by the type that fixes an Array's extents.
// Implementations should be zero-size value types whose Extents method returns a
// constant tuple; the zero value of S is used to read the shape.
type Shape[I multiindex.Index] interface {
	Extents() I
}

// shapeOf reads the extents tuple of the shape type S.
func shapeOf[I multiindex.Index, S Shape[I]]() I {
	var s S
	return s.Extents()
}

// validateShape checks an extents tuple and returns its cell count.
// Implementation:
//   - Stage 1: reject negative extents, and zero extents when allowZero is false.
//   - Stage 2: multiply extents, rejecting a product that overflows int.
//
// Returns 0 cells for an accepted shape with a zero-length axis.
// Complexity: O(D).
func validateShape[I multiindex.Index](extents I, allowZero bool) (int, error) {
	cells := 1
	for k := 0; k < len(extents); k++ {
		e := extents[k]
		switch {
		case e < 0:
			return 0, ErrBadShape
		case e == 0:
			if !allowZero {
				return 0, ErrBadShape
			}
			cells = 0
		case cells > math.MaxInt/e:
			return 0, ErrBadShape
		default:
			cells *= e
		}
	}

	return cells, nil
}
