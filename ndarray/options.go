// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for Array constructors.
//
// Options are resolved once per constructor call by gatherOptions; the resulting
// policy is applied uniformly by New, NewFilled and NewFunc.
package ndarray

// DefaultAllowZeroExtents permits shapes with a zero-length axis. Such arrays hold no
// cells, every access fails with ErrOutOfRange and traversal yields nothing.
const DefaultAllowZeroExtents = true

const panicNilOption = "ndarray: nil Option"

// Option mutates constructor options. Options apply in order; the last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	allowZeroExtents bool // DefaultAllowZeroExtents
}

// WithZeroExtents accepts zero-length axes (the default).
func WithZeroExtents() Option {
	return func(o *Options) { o.allowZeroExtents = true }
}

// WithoutZeroExtents makes constructors reject any zero-length axis with ErrBadShape.
// Use it when an empty array would signal a configuration mistake upstream.
func WithoutZeroExtents() Option {
	return func(o *Options) { o.allowZeroExtents = false }
}

// gatherOptions applies user setters over the documented defaults.
// A nil Option is a programmer error and panics.
func gatherOptions(user ...Option) Options {
	o := Options{
		allowZeroExtents: DefaultAllowZeroExtents,
	}
	for _, set := range user {
		if set == nil {
			panic(panicNilOption)
		}
		set(&o)
	}

	return o
}
