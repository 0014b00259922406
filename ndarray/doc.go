// Package ndarray provides Array, a dense N-dimensional container whose rank and
// per-axis extents are part of its type.
//
// What & Why:
//
//	An Array[T, I, S] stores product(extents) elements of type T in one flat buffer.
//	I is the coordinate tuple type (a fixed-length int array from multiindex), so a
//	coordinate with the wrong number of components does not compile. S is a shape
//	type whose Extents method returns the per-axis sizes; two arrays with different
//	shapes are different Go types.
//
//	Declaring a shape:
//
//		type Cube3 struct{}
//
//		func (Cube3) Extents() [3]int { return [3]int{3, 3, 3} }
//
//		vox, err := ndarray.NewFunc[int, [3]int, Cube3](ndarray.Func3(func(x, y, z int) int {
//			return x * y * z
//		}))
//
// Layout:
//
//	Storage is row-major: axis 0 is the outermost (slowest) axis and the last axis is
//	contiguous. For extents (e0, …, eD-1) the offset of (i0, …, iD-1) is accumulated
//	with a running divisor that starts at cells and is divided by e_k before adding
//	divisor*i_k. Traversal (All, Apply, NewFunc) follows multiindex odometer order,
//	axis 0 fastest; values are always stored at the mapped offset of their coordinate,
//	never at their traversal rank.
//
// Construction policies:
//
//   - New: every cell holds T's zero value.
//   - NewFilled: every cell holds a copy of one value.
//   - NewFunc: every cell holds f(coordinate).
//
// Errors:
//
//   - ErrOutOfRange: a coordinate component is negative or >= its extent.
//   - ErrBadShape: a negative extent, a zero extent under WithoutZeroExtents, or a
//     cell count that overflows int.
//   - ErrNilFunc: a nil generator or transform.
//   - ErrNilArray: a method that returns an error was called on a nil *Array.
//
// Concurrency:
//
//	Array holds no locks. Concurrent readers are safe; any writer needs external
//	synchronization.
//
// Complexity:
//
//	At/Get/Set/Offset/Coordinate: O(D). Construction, Fill, Apply, Clone, All: O(cells).
package ndarray
