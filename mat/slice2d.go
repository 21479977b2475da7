// Package mat: Slice2D, the built-in [][]T adapter.
//
// Go has no fixed-size 2D array generics, so the adapter wraps the ordinary
// slice-of-slices literal instead: shape is derived from the slice lengths
// and element access is direct indexing. It is a thin wrapper; use FromRows
// when you want validated, copied storage instead of an alias.

package mat

import "fmt"

// Slice2D adapts a [][]T to the matrix capability contract without copying.
// All inner slices must have equal length; FromRows validates that if the
// input is untrusted. A Slice2D with no rows, or whose first row is empty,
// is an empty matrix.
type Slice2D[T any] [][]T

// Rows returns the number of rows, 0 when the first row has no columns.
// Complexity: O(1).
func (s Slice2D[T]) Rows() int {
	if len(s) == 0 || len(s[0]) == 0 {
		return 0
	}

	return len(s)
}

// Cols returns the number of columns, taken from the first row.
// Complexity: O(1).
func (s Slice2D[T]) Cols() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// At retrieves the element at (i, j), or ErrOutOfRange.
// Complexity: O(1).
func (s Slice2D[T]) At(i, j int) (T, error) {
	if i < 0 || i >= s.Rows() || j < 0 || j >= len(s[i]) {
		var zero T

		return zero, fmt.Errorf("Slice2D.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return s[i][j], nil
}

// AtRef returns an exclusive reference to the element at (i, j), or
// ErrOutOfRange.
// Complexity: O(1).
func (s Slice2D[T]) AtRef(i, j int) (*T, error) {
	if i < 0 || i >= s.Rows() || j < 0 || j >= len(s[i]) {
		return nil, fmt.Errorf("Slice2D.AtRef(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return &s[i][j], nil
}
