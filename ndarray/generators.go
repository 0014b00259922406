// SPDX-License-Identifier: MIT

package ndarray

// Positional adapters for NewFunc: a generator written with one int parameter per
// axis becomes a func over the coordinate array. A nil f yields a nil func, which
// NewFunc rejects with ErrNilFunc.

// Func1 adapts func(i int) T to a rank-1 generator.
func Func1[T any](f func(i int) T) func([1]int) T {
	if f == nil {
		return nil
	}
	return func(c [1]int) T { return f(c[0]) }
}

// Func2 adapts func(i, j int) T to a rank-2 generator.
func Func2[T any](f func(i, j int) T) func([2]int) T {
	if f == nil {
		return nil
	}
	return func(c [2]int) T { return f(c[0], c[1]) }
}

// Func3 adapts func(x, y, z int) T to a rank-3 generator.
func Func3[T any](f func(x, y, z int) T) func([3]int) T {
	if f == nil {
		return nil
	}
	return func(c [3]int) T { return f(c[0], c[1], c[2]) }
}

// Func4 adapts func(i, j, k, l int) T to a rank-4 generator.
func Func4[T any](f func(i, j, k, l int) T) func([4]int) T {
	if f == nil {
		return nil
	}
	return func(c [4]int) T { return f(c[0], c[1], c[2], c[3]) }
}
