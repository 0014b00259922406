// SPDX-License-Identifier: MIT

package multiindex

import "errors"

// Sentinel errors for coordinate conversion. Match them with errors.Is.
var (
	// ErrArity indicates the number of components differs from the rank of the Index type.
	ErrArity = errors.New("multiindex: component count does not match rank")

	// ErrNegative indicates a negative coordinate component.
	ErrNegative = errors.New("multiindex: negative component")

	// ErrOverflow indicates a component that cannot be represented as int.
	ErrOverflow = errors.New("multiindex: component overflows int")
)
