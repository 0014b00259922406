package multiindex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecnd/multiindex"
	"github.com/stretchr/testify/require"
)

// TestDims checks the rank reported for several Index types.
func TestDims(t *testing.T) {
	require.Equal(t, 1, multiindex.Dims[[1]int]())
	require.Equal(t, 3, multiindex.Dims[[3]int]())
	require.Equal(t, multiindex.MaxRank, multiindex.Dims[[8]int]())
}

// TestProduct covers regular, unit and empty shapes.
func TestProduct(t *testing.T) {
	require.Equal(t, 24, multiindex.Product([3]int{2, 3, 4}))
	require.Equal(t, 1, multiindex.Product([2]int{1, 1}))
	require.Equal(t, 0, multiindex.Product([2]int{3, 0}))
	require.Equal(t, 0, multiindex.Product([2]int{3, -1}))
	require.True(t, multiindex.IsEmpty([1]int{0}))
	require.False(t, multiindex.IsEmpty([1]int{1}))
}

// TestFrom covers conversion from several integral types and every error branch.
func TestFrom(t *testing.T) {
	c, err := multiindex.From[[3]int](uint8(1), uint8(2), uint8(3))
	require.NoError(t, err)
	require.Equal(t, [3]int{1, 2, 3}, c)

	c2, err := multiindex.From[[2]int](int64(7), int64(0))
	require.NoError(t, err)
	require.Equal(t, [2]int{7, 0}, c2)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"too few", func() error { _, err := multiindex.From[[3]int](1, 2); return err }, multiindex.ErrArity},
		{"too many", func() error { _, err := multiindex.From[[1]int](1, 2); return err }, multiindex.ErrArity},
		{"negative", func() error { _, err := multiindex.From[[2]int](int32(0), int32(-1)); return err }, multiindex.ErrNegative},
		{"overflow", func() error { _, err := multiindex.From[[1]int](uint64(math.MaxUint64)); return err }, multiindex.ErrOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), tc.want)
		})
	}
}
