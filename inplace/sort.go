package inplace

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/matview/mat"
)

// SortFunc reorders the elements of m in row-major order according to
// less. The sort is stable: elements comparing equal keep their original
// relative order.
// Complexity: O(size*log(size)) comparisons, O(size) extra memory.
func SortFunc[T any](m mat.MutMatrix[T], less func(a, b T) bool) {
	size := mat.Size[T](m)
	if size < 2 {
		return
	}
	// Writes through AtRef can be arbitrarily indirect (views), so sort a
	// flat copy and write it back rather than swapping in place.
	flat := make([]T, size)
	for n := range flat {
		flat[n] = mat.MustAtNth[T](m, n)
	}
	sort.SliceStable(flat, func(a, b int) bool { return less(flat[a], flat[b]) })
	for n, v := range flat {
		*mat.MustAtNthRef(m, n) = v
	}
}

// Sort reorders the elements of m in ascending row-major order.
// Complexity: O(size*log(size)).
func Sort[T cmp.Ordered](m mat.MutMatrix[T]) {
	SortFunc(m, func(a, b T) bool { return a < b })
}

// SortBy reorders the elements of m by an extracted key, ascending.
// Complexity: O(size*log(size)).
func SortBy[T any, K cmp.Ordered](m mat.MutMatrix[T], key func(T) K) {
	SortFunc(m, func(a, b T) bool { return key(a) < key(b) })
}
