// SPDX-License-Identifier: MIT

// Package ndarray - Array storage, constructors & safe accessors.
//
// Purpose:
//   - Own one flat buffer of product(extents) elements, allocated once.
//   - Translate coordinates to offsets with an explicit bounds check first.
//   - Guarantee safety at the public surface: accessors return errors, never panic.
//
// Complexity quicksheet:
//   - New/NewFilled/NewFunc: O(cells); At/Get/Set: O(D).

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/vecnd/multiindex"
)

// Array is a dense, fixed-shape N-dimensional container.
//   - extents is a copy of S's extents tuple and never changes.
//   - cells == product(extents) == len(data).
//   - data is stored row-major (last axis contiguous).
type Array[T any, I multiindex.Index, S Shape[I]] struct {
	extents I   // per-axis sizes, fixed at construction
	cells   int // len(data)
	data    []T // flat backing storage
}

// newArray validates S's shape under the resolved options and allocates a
// zero-filled buffer. ctx is the public constructor tag used for error context.
func newArray[T any, I multiindex.Index, S Shape[I]](ctx string, opts []Option) (*Array[T, I, S], error) {
	o := gatherOptions(opts...)
	extents := shapeOf[I, S]()
	cells, err := validateShape(extents, o.allowZeroExtents)
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", ctx, extents, err)
	}

	return &Array[T, I, S]{
		extents: extents,
		cells:   cells,
		data:    make([]T, cells), // make() zero-fills deterministically
	}, nil
}

// New creates an Array whose cells all hold T's zero value.
// MAIN DESCRIPTION:
//   - Default construction policy.
//
// Implementation:
//   - Stage 1: read and validate S.Extents() (see WithoutZeroExtents).
//   - Stage 2: allocate the flat buffer.
//
// Errors:
//   - ErrBadShape (negative extent, forbidden zero extent, overflowing cell count).
//
// Complexity:
//   - Time O(cells), Space O(cells).
func New[T any, I multiindex.Index, S Shape[I]](opts ...Option) (*Array[T, I, S], error) {
	return newArray[T, I, S](ctxNew, opts)
}

// NewFilled creates an Array whose cells all hold a copy of v.
// Copies are shallow: for pointer, slice or map element types every cell refers to
// the same underlying object.
// Complexity: O(cells).
func NewFilled[T any, I multiindex.Index, S Shape[I]](v T, opts ...Option) (*Array[T, I, S], error) {
	a, err := newArray[T, I, S](ctxNewFilled, opts)
	if err != nil {
		return nil, err
	}
	a.Fill(v)

	return a, nil
}

// NewFunc creates an Array whose cell at every coordinate c holds f(c).
// MAIN DESCRIPTION:
//   - Generator construction policy.
//
// Implementation:
//   - Stage 1: validate f and the shape.
//   - Stage 2: walk coordinates in odometer order (axis 0 fastest), calling f once each.
//   - Stage 3: store each result at the offset mapped from its own coordinate.
//
// Behavior highlights:
//   - Storage never depends on the traversal rank, so At(c) == f(c) for every shape,
//     including non-uniform extents.
//   - Use Func1..Func4 to adapt positional functions such as func(x, y, z int) T.
//
// Errors:
//   - ErrNilFunc when f is nil; ErrBadShape as for New.
//
// Complexity:
//   - Time O(cells·D) plus the cost of f, Space O(cells).
func NewFunc[T any, I multiindex.Index, S Shape[I]](f func(I) T, opts ...Option) (*Array[T, I, S], error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFunc, ErrNilFunc)
	}
	a, err := newArray[T, I, S](ctxNewFunc, opts)
	if err != nil {
		return nil, err
	}
	for c := range multiindex.All(a.extents) {
		a.data[offsetOf(a.extents, a.cells, c)] = f(c)
	}

	return a, nil
}

// Sizes returns the extents tuple. It always equals S.Extents().
// Complexity: O(1).
func (a *Array[T, I, S]) Sizes() I { return a.extents }

// Cells returns the number of elements, product(Sizes()).
// Complexity: O(1).
func (a *Array[T, I, S]) Cells() int { return a.cells }

// Dims returns the rank D.
// Complexity: O(1).
func (a *Array[T, I, S]) Dims() int { return len(a.extents) }

// InBounds reports whether c addresses a cell of the array.
// Complexity: O(D).
func (a *Array[T, I, S]) InBounds(c I) bool { return inBounds(a.extents, c) }

// indexOf bounds-checks c and returns its offset, or ErrOutOfRange without context;
// public methods wrap with their own tag.
func (a *Array[T, I, S]) indexOf(c I) (int, error) {
	if !inBounds(a.extents, c) {
		return 0, ErrOutOfRange
	}

	return offsetOf(a.extents, a.cells, c), nil
}

// lookup is the shared guard for the error-returning accessors.
func (a *Array[T, I, S]) lookup(method string, c I) (int, error) {
	if a == nil {
		return 0, arrayErrorf(method, c, ErrNilArray)
	}
	off, err := a.indexOf(c)
	if err != nil {
		return 0, arrayErrorf(method, c, err)
	}

	return off, nil
}

// At returns a copy of the element at c, or ErrOutOfRange.
// The bounds check happens before any offset is computed or the buffer is read.
// Complexity: O(D).
func (a *Array[T, I, S]) At(c I) (T, error) {
	off, err := a.lookup(ctxAt, c)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// Get returns a pointer to the element at c for in-place mutation, or ErrOutOfRange.
// The buffer is never reallocated, so the pointer stays valid for the array's
// lifetime; it does not follow Clone.
// Complexity: O(D).
func (a *Array[T, I, S]) Get(c I) (*T, error) {
	off, err := a.lookup(ctxGet, c)
	if err != nil {
		return nil, err
	}

	return &a.data[off], nil
}

// Set stores v at c, or returns ErrOutOfRange leaving the buffer untouched.
// Complexity: O(D).
func (a *Array[T, I, S]) Set(c I, v T) error {
	off, err := a.lookup(ctxSet, c)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Offset returns the linear buffer position of c, or ErrOutOfRange.
// Complexity: O(D).
func (a *Array[T, I, S]) Offset(c I) (int, error) {
	return a.lookup(ctxOffset, c)
}

// Coordinate returns the coordinate stored at linear position off, the inverse of
// Offset. Offsets outside [0, Cells()) yield ErrOutOfRange.
// Complexity: O(D).
func (a *Array[T, I, S]) Coordinate(off int) (I, error) {
	if a == nil {
		var zero I
		return zero, arrayErrorf(ctxCoordinate, off, ErrNilArray)
	}
	if off < 0 || off >= a.cells {
		var zero I
		return zero, arrayErrorf(ctxCoordinate, off, ErrOutOfRange)
	}

	return coordinateOf(a.extents, off), nil
}
