package inplace

import (
	"fmt"

	"github.com/katalvlaran/matview/mat"
)

// TransposeSquare mirrors a square matrix across its main diagonal in
// place. Panics when the matrix is not square; rectangular matrices need
// Transpose and its mat.Reshapable argument.
// Complexity: O(rows*cols), no extra memory.
func TransposeSquare[T any](m mat.MutMatrix[T]) {
	if !mat.IsSquare[T](m) {
		panic(fmt.Sprintf("inplace: TransposeSquare on a %dx%d matrix", m.Rows(), m.Cols()))
	}
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			Swap(m, i, j, j, i)
		}
	}
}

// Transpose mirrors any matrix across its main diagonal in place,
// permuting the row-major order cycle by cycle and then relabelling the
// dimensions through SwapDims.
// Complexity: O(rows*cols) time; rectangular shapes use one visited bit
// per element, square shapes none.
func Transpose[T any](m mat.Reshapable[T]) {
	s := mat.ShapeOf[T](m)
	if s.Rows == s.Cols {
		TransposeSquare[T](m)
		return
	}
	size := s.Size()
	if size > 1 {
		// Element at linear n lands at (n % cols)*rows + n / cols in the
		// transposed layout. Walk each permutation cycle once, carrying
		// the displaced value forward.
		visited := make([]bool, size)
		for start := range visited {
			if visited[start] {
				continue
			}
			visited[start] = true
			carried := mat.MustAtNth[T](m, start)
			for n := start; ; {
				dest := (n%s.Cols)*s.Rows + n/s.Cols
				if dest == start {
					*mat.MustAtNthRef[T](m, start) = carried
					break
				}
				p := mat.MustAtNthRef[T](m, dest)
				carried, *p = *p, carried
				visited[dest] = true
				n = dest
			}
		}
	}
	m.SwapDims()
}

// FlipH mirrors the matrix horizontally in place: the first column
// becomes the last. Complexity: O(rows*cols).
func FlipH[T any](m mat.MutMatrix[T]) {
	cols := m.Cols()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < cols/2; j++ {
			Swap(m, i, j, i, cols-1-j)
		}
	}
}

// FlipV mirrors the matrix vertically in place: the first row becomes
// the last. Complexity: O(rows*cols).
func FlipV[T any](m mat.MutMatrix[T]) {
	rows := m.Rows()
	for i := 0; i < rows/2; i++ {
		SwapRows(m, i, rows-1-i)
	}
}

// Reverse reverses the row-major order of the matrix in place, which is
// the same as a half turn. Complexity: O(rows*cols).
func Reverse[T any](m mat.MutMatrix[T]) {
	reverseRange(m, 0, mat.Size[T](m))
}

// RotateR turns the matrix a quarter turn clockwise in place: transpose,
// then flip horizontally. Complexity: O(rows*cols).
func RotateR[T any](m mat.Reshapable[T]) {
	Transpose(m)
	FlipH[T](m)
}

// RotateL turns the matrix a quarter turn counter-clockwise in place:
// transpose, then flip vertically. Complexity: O(rows*cols).
func RotateL[T any](m mat.Reshapable[T]) {
	Transpose(m)
	FlipV[T](m)
}

// ShiftFront rotates the row-major order toward the front by n positions:
// the element at linear index n becomes the first. Shifting by the matrix
// size (or by zero) is the identity; negative n shifts backward.
// Complexity: O(rows*cols).
func ShiftFront[T any](m mat.MutMatrix[T], n int) {
	shift(m, n)
}

// ShiftBack rotates the row-major order toward the back by n positions:
// the first element moves to linear index n. Complexity: O(rows*cols).
func ShiftBack[T any](m mat.MutMatrix[T], n int) {
	shift(m, -n)
}

// shift rotates the flat order left by n using three reversals.
func shift[T any](m mat.MutMatrix[T], n int) {
	size := mat.Size[T](m)
	if size == 0 {
		return
	}
	n = ((n % size) + size) % size
	if n == 0 {
		return
	}
	reverseRange(m, 0, n)
	reverseRange(m, n, size)
	reverseRange(m, 0, size)
}

// reverseRange reverses the linear positions [lo, hi).
func reverseRange[T any](m mat.MutMatrix[T], lo, hi int) {
	for hi--; lo < hi; lo, hi = lo+1, hi-1 {
		SwapNth(m, lo, hi)
	}
}
