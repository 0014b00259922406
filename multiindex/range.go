// SPDX-License-Identifier: MIT

package multiindex

import "iter"

// Range wraps an extents tuple and hands out Begin/End iterators for a full traversal.
type Range[I Index] struct {
	extents I
}

// NewRange returns a Range over extents.
func NewRange[I Index](extents I) Range[I] {
	return Range[I]{extents: extents}
}

// Extents returns the wrapped per-axis sizes.
func (r Range[I]) Extents() I { return r.extents }

// Begin returns a fresh iterator at the first tuple.
func (r Range[I]) Begin() *Iterator[I] { return Begin(r.extents) }

// End returns the terminal sentinel iterator.
func (r Range[I]) End() *Iterator[I] { return End(r.extents) }

// Len returns the number of tuples the traversal yields.
func (r Range[I]) Len() int { return Product(r.extents) }

// All yields every tuple in odometer order (axis 0 fastest).
// The sequence is finite and may be ranged over repeatedly; each range starts
// a new iterator from Begin.
func (r Range[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		end := r.End()
		for it := r.Begin(); !it.Equal(end); it.Next() {
			if !yield(it.Current()) {
				return
			}
		}
	}
}

// Enumerate yields (rank, tuple) pairs, rank being the 0-based position of the
// tuple in odometer order.
func (r Range[I]) Enumerate() iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		var rank int
		for c := range r.All() {
			if !yield(rank, c) {
				return
			}
			rank++
		}
	}
}

// All is shorthand for NewRange(extents).All().
func All[I Index](extents I) iter.Seq[I] {
	return NewRange(extents).All()
}
