// Package multiindex enumerates the coordinate tuples of a fixed-rank index space.
//
// What:
//
//   - Index is the constraint for coordinate tuples: fixed-length int arrays of rank 1..8,
//     so the number of components is checked by the compiler.
//   - Iterator walks every tuple of an extents tuple in odometer order: axis 0 varies
//     fastest and carries into axis 1, then axis 2, and so on.
//   - Range pairs Begin/End iterators for an extents tuple and exposes the traversal as
//     iter.Seq / iter.Seq2 for use with range-over-func.
//   - From converts loosely typed integer components into an Index value.
//
// Termination:
//
//	The terminal sentinel of an iterator is the extents tuple itself (every component
//	equal to its axis extent). An index space with any zero extent is empty: Begin is
//	already equal to End and the traversal yields nothing.
//
// Complexity:
//
//   - Next: amortized O(1), worst case O(D); never allocates.
//   - Full traversal: O(product(extents)).
//
// Errors:
//
//   - ErrArity: From received a different number of components than the rank.
//   - ErrNegative: From received a negative component.
//   - ErrOverflow: From received a component that does not fit in int.
package multiindex
