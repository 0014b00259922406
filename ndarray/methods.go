// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/vecnd/multiindex"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// All yields (coordinate, value) pairs in odometer order, axis 0 fastest.
// Each range over the returned sequence starts a fresh traversal. Mutating the
// array while ranging is allowed and is observed by cells not yet visited.
func (a *Array[T, I, S]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for c := range multiindex.All(a.extents) {
			if !yield(c, a.data[offsetOf(a.extents, a.cells, c)]) {
				return
			}
		}
	}
}

// Coords yields every valid coordinate of the array in odometer order.
func (a *Array[T, I, S]) Coords() iter.Seq[I] {
	return multiindex.All(a.extents)
}

// Fill overwrites every cell with v.
// Complexity: O(cells).
func (a *Array[T, I, S]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Apply replaces every cell value v at coordinate c with fn(c, v).
// Cells are visited in odometer order.
// Errors: ErrNilFunc when fn is nil, ErrNilArray on a nil receiver.
// Complexity: O(cells·D) plus the cost of fn.
func (a *Array[T, I, S]) Apply(fn func(c I, v T) T) error {
	if a == nil {
		return fmt.Errorf("Array.%s: %w", ctxApply, ErrNilArray)
	}
	if fn == nil {
		return fmt.Errorf("Array.%s: %w", ctxApply, ErrNilFunc)
	}
	var off int
	for c := range multiindex.All(a.extents) {
		off = offsetOf(a.extents, a.cells, c)
		a.data[off] = fn(c, a.data[off])
	}

	return nil
}

// Clone returns a deep copy of the buffer. Element values are copied shallowly.
// Complexity: O(cells).
func (a *Array[T, I, S]) Clone() *Array[T, I, S] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array[T, I, S]{extents: a.extents, cells: a.cells, data: cp}
}

// Values returns a copy of the buffer in storage (row-major) order.
// Complexity: O(cells).
func (a *Array[T, I, S]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// String renders the buffer one innermost row per line, e.g. "[1, 2]\n[3, 4]\n"
// for a 2×2 array. Rows appear in storage order. Intended for debugging.
func (a *Array[T, I, S]) String() string {
	if a.cells == 0 {
		return ""
	}
	width := a.extents[len(a.extents)-1]
	var b strings.Builder
	for base := 0; base < a.cells; base += width {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < width; j++ {
			fmt.Fprintf(&b, "%v", a.data[base+j])
			if j+1 < width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
