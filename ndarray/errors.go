// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Public methods never panic on user-triggered conditions; they return one of these
// sentinels, wrapped with method context. Tests match them with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a coordinate component outside [0, extent) on its axis,
	// or a linear offset outside [0, cells).
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadShape is returned by constructors when the shape type reports an unusable
	// extents tuple.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrNilFunc indicates a nil generator or transform function.
	ErrNilFunc = errors.New("ndarray: nil function")

	// ErrNilArray indicates a nil *Array receiver.
	ErrNilArray = errors.New("ndarray: nil receiver")
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxNewFilled  = "NewFilled"
	ctxNewFunc    = "NewFunc"
	ctxAt         = "At"
	ctxGet        = "Get"
	ctxSet        = "Set"
	ctxOffset     = "Offset"
	ctxCoordinate = "Coordinate"
	ctxApply      = "Apply"
)

// arrayErrorf wraps err with the method tag and the offending argument,
// e.g. "Array.At([2 3 0]): ndarray: index out of range".
func arrayErrorf(method string, arg any, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, arg, err)
}
