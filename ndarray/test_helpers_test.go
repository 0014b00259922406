// SPDX-License-Identifier: MIT
// Package ndarray_test contains shared shapes and helpers for the Array tests.

package ndarray_test

import "math"

// Shapes used across the tests. Each is a zero-size type fixing one extents tuple.
type (
	cube3     struct{} // 3×3×3
	box234    struct{} // 2×3×4, non-uniform
	square2   struct{} // 2×2
	line5     struct{} // 5
	hyper2132 struct{} // 2×1×3×2
	flat40    struct{} // 4×0, empty
	negAxis   struct{} // 2×-1, invalid
	overflow  struct{} // MaxInt×2, invalid
)

func (cube3) Extents() [3]int { return [3]int{3, 3, 3} }
func (box234) Extents() [3]int { return [3]int{2, 3, 4} }
func (square2) Extents() [2]int { return [2]int{2, 2} }
func (line5) Extents() [1]int { return [1]int{5} }
func (hyper2132) Extents() [4]int { return [4]int{2, 1, 3, 2} }
func (flat40) Extents() [2]int { return [2]int{4, 0} }
func (negAxis) Extents() [2]int { return [2]int{2, -1} }
func (overflow) Extents() [2]int { return [2]int{math.MaxInt, 2} }

// tag encodes a 3-D coordinate into a distinct int, so misplaced cells are visible.
func tag(x, y, z int) int { return 100*x + 10*y + z }
