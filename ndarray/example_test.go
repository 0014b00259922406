package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecnd/ndarray"
)

type voxels struct{}

func (voxels) Extents() [3]int { return [3]int{3, 3, 3} }

// ExampleNewFunc fills a 3×3×3 cube with x*y*z.
func ExampleNewFunc() {
	vox, err := ndarray.NewFunc[int, [3]int, voxels](ndarray.Func3(func(x, y, z int) int {
		return x * y * z
	}))
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := vox.At([3]int{2, 2, 2})
	fmt.Println(v, vox.Cells(), vox.Sizes())
	// Output:
	// 8 27 [3 3 3]
}

type board struct{}

func (board) Extents() [2]int { return [2]int{2, 2} }

// ExampleNewFilled shows an out-of-range read on a filled 2×2 board.
func ExampleNewFilled() {
	b, _ := ndarray.NewFilled[string, [2]int, board]("test")
	v, _ := b.At([2]int{1, 1})
	fmt.Println(v)

	_, err := b.At([2]int{2, 0})
	fmt.Println(errors.Is(err, ndarray.ErrOutOfRange))
	// Output:
	// test
	// true
}

// ExampleArray_Get mutates a cell in place through the returned pointer.
func ExampleArray_Get() {
	b, _ := ndarray.New[int, [2]int, board]()
	p, _ := b.Get([2]int{0, 1})
	*p += 9
	fmt.Print(b)
	// Output:
	// [0, 9]
	// [0, 0]
}
