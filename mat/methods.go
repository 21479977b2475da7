// Package mat: derived accessors.
// Everything in this file is expressed purely through the capability
// contract, so it works on concrete storage and on views alike.

package mat

import "fmt"

// ShapeOf returns the shape of m. Complexity: O(1).
func ShapeOf[T any](m Matrix[T]) Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// Size returns the number of elements of m. Complexity: O(1).
func Size[T any](m Matrix[T]) int { return m.Rows() * m.Cols() }

// IsEmpty reports whether m holds no elements. Complexity: O(1).
func IsEmpty[T any](m Matrix[T]) bool { return Size(m) == 0 }

// AtNth retrieves the element at row-major linear position n, or
// ErrOutOfRange. Complexity: O(1).
func AtNth[T any](m Matrix[T], n int) (T, error) {
	i, j, err := ShapeOf(m).CheckedSubscripts(n)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("AtNth(%d): %w", n, err)
	}

	return m.At(i, j)
}

// AtNthRef returns an exclusive reference to the element at linear position
// n, or ErrOutOfRange. Complexity: O(1).
func AtNthRef[T any](m MutMatrix[T], n int) (*T, error) {
	i, j, err := ShapeOf[T](m).CheckedSubscripts(n)
	if err != nil {
		return nil, fmt.Errorf("AtNthRef(%d): %w", n, err)
	}

	return m.AtRef(i, j)
}

// First returns the element at (0, 0), or ErrOutOfRange for an empty matrix.
// Complexity: O(1).
func First[T any](m Matrix[T]) (T, error) { return m.At(0, 0) }

// Last returns the element at (Rows-1, Cols-1), or ErrOutOfRange for an
// empty matrix. Complexity: O(1).
func Last[T any](m Matrix[T]) (T, error) {
	return m.At(m.Rows()-1, m.Cols()-1)
}

// Set assigns v at (i, j) through the write capability, or returns
// ErrOutOfRange. Complexity: O(1).
func Set[T any](m MutMatrix[T], i, j int, v T) error {
	p, err := m.AtRef(i, j)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// SetNth assigns v at row-major linear position n, or returns ErrOutOfRange.
// Complexity: O(1).
func SetNth[T any](m MutMatrix[T], n int, v T) error {
	p, err := AtNthRef(m, n)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// MustAt is the caller-proves-bounds tier of At: it panics instead of
// returning ErrOutOfRange. Use only after the coordinates have been
// validated. Complexity: O(1).
func MustAt[T any](m Matrix[T], i, j int) T {
	v, err := m.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// MustAtRef is the caller-proves-bounds tier of AtRef; panics out of bounds.
// Complexity: O(1).
func MustAtRef[T any](m MutMatrix[T], i, j int) *T {
	p, err := m.AtRef(i, j)
	if err != nil {
		panic(err)
	}

	return p
}

// MustAtNth is the caller-proves-bounds tier of AtNth; panics out of bounds.
// Complexity: O(1).
func MustAtNth[T any](m Matrix[T], n int) T {
	v, err := AtNth(m, n)
	if err != nil {
		panic(err)
	}

	return v
}

// MustAtNthRef is the caller-proves-bounds tier of AtNthRef; panics out of
// bounds. Complexity: O(1).
func MustAtNthRef[T any](m MutMatrix[T], n int) *T {
	p, err := AtNthRef(m, n)
	if err != nil {
		panic(err)
	}

	return p
}

// Collect materializes m (typically a composed view) into a fresh Dense
// matrix with its own storage. It panics if m reports absence for an
// in-bounds cell (possible only for mapping views whose entries point
// outside the subject, a contract violation).
// Complexity: O(rows*cols) time and memory.
func Collect[T any](m Matrix[T]) *Dense[T] {
	rows, cols := m.Rows(), m.Cols()
	out := &Dense[T]{
		shape: Shape{Rows: rows, Cols: cols},
		data:  make([]T, rows*cols),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[out.shape.Index(i, j)] = MustAt(m, i, j)
		}
	}

	return out
}

// Equal reports whether a and b have the same shape and equal elements in
// row-major order. Complexity: O(rows*cols).
func Equal[T comparable](a, b Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, aerr := a.At(i, j)
			bv, berr := b.At(i, j)
			if aerr != nil || berr != nil || av != bv {
				return false
			}
		}
	}

	return true
}
