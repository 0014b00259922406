// SPDX-License-Identifier: MIT

package multiindex

// Iterator is a forward-only cursor over the tuples of an extents tuple.
// The extents are copied at creation and never change; the current tuple is
// advanced in place by Next. Iterators are values with no shared state, so an
// exhausted iterator is restarted only by calling Begin again.
type Iterator[I Index] struct {
	extents I // immutable copy of the per-axis sizes
	cur     I // current tuple; equals extents once exhausted
}

// Begin returns an iterator positioned at the all-zero tuple.
// If any extent is <= 0 the space is empty and the iterator starts at the terminal
// sentinel, so it is immediately equal to End(extents).
// Complexity: O(D).
func Begin[I Index](extents I) *Iterator[I] {
	it := &Iterator[I]{extents: extents}
	if IsEmpty(extents) {
		it.cur = extents
	}

	return it
}

// End returns an iterator positioned at the terminal sentinel (current tuple == extents).
// It is meant as a comparison target; its Current is not a valid coordinate.
// Complexity: O(D).
func End[I Index](extents I) *Iterator[I] {
	return &Iterator[I]{extents: extents, cur: extents}
}

// Current returns a copy of the tuple at the present position.
// Only meaningful while !Done().
func (it *Iterator[I]) Current() I { return it.cur }

// Extents returns the per-axis sizes the iterator was created with.
func (it *Iterator[I]) Extents() I { return it.extents }

// Done reports whether the iterator reached the terminal sentinel.
func (it *Iterator[I]) Done() bool { return it.cur == it.extents }

// Next advances to the following tuple in odometer order and returns the receiver,
// so `it.Next().Current()` reads the new position.
// Implementation:
//   - Stage 1: increment axis 0.
//   - Stage 2: while an axis reaches its extent, reset it to 0 and carry into the next axis.
//   - Stage 3: a carry past the last axis moves the iterator to the terminal sentinel.
//
// Calling Next on an exhausted iterator leaves it at the sentinel.
// Complexity: amortized O(1), worst case O(D); no allocations.
func (it *Iterator[I]) Next() *Iterator[I] {
	if it.Done() {
		return it
	}
	for k := 0; k < len(it.cur); k++ {
		it.cur[k]++
		if it.cur[k] < it.extents[k] {
			return it
		}
		it.cur[k] = 0 // carry into axis k+1
	}
	it.cur = it.extents

	return it
}

// Equal reports whether both iterators sit on the same tuple.
// Iterators over different extents are not meant to be compared.
func (it *Iterator[I]) Equal(other *Iterator[I]) bool {
	return it.cur == other.cur
}
