package multiindex_test

import (
	"fmt"

	"github.com/katalvlaran/vecnd/multiindex"
)

// ExampleRange_All walks a 3×2 space; axis 0 changes fastest.
func ExampleRange_All() {
	for c := range multiindex.NewRange([2]int{3, 2}).All() {
		fmt.Println(c)
	}
	// Output:
	// [0 0]
	// [1 0]
	// [2 0]
	// [0 1]
	// [1 1]
	// [2 1]
}

// ExampleBegin shows the explicit Begin/End protocol.
func ExampleBegin() {
	extents := [2]int{2, 2}
	end := multiindex.End(extents)
	for it := multiindex.Begin(extents); !it.Equal(end); it.Next() {
		fmt.Print(it.Current(), " ")
	}
	fmt.Println()
	// Output:
	// [0 0] [1 0] [0 1] [1 1]
}
