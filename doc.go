// Package vecnd provides fixed-shape dense N-dimensional arrays for Go.
//
// The shape of an array (its rank and per-axis extents) is part of its type, so
// coordinates with the wrong number of components are rejected by the compiler,
// and out-of-range components are reported as errors at run time.
//
// Subpackages:
//
//	multiindex/ — coordinate tuples, odometer-order iterators and ranges
//	ndarray/    — Array: flat row-major storage, construction policies, safe accessors
//	examples/   — runnable demo (voxel occupancy grid)
//
// Quick example:
//
//	type Cube3 struct{}
//
//	func (Cube3) Extents() [3]int { return [3]int{3, 3, 3} }
//
//	vox, _ := ndarray.NewFunc[int, [3]int, Cube3](ndarray.Func3(func(x, y, z int) int {
//		return x * y * z
//	}))
//	v, _ := vox.At([3]int{2, 2, 2}) // 8
//
//	go get github.com/katalvlaran/vecnd
package vecnd
