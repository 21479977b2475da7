package inplace

import "github.com/katalvlaran/matview/mat"

// Swap exchanges the elements at (i1, j1) and (i2, j2). Panics when either
// position is out of range. Complexity: O(1).
func Swap[T any](m mat.MutMatrix[T], i1, j1, i2, j2 int) {
	a := mat.MustAtRef(m, i1, j1)
	b := mat.MustAtRef(m, i2, j2)
	*a, *b = *b, *a
}

// SwapNth exchanges the elements at row-major linear positions n1 and n2.
// Panics when either position is out of range. Complexity: O(1).
func SwapNth[T any](m mat.MutMatrix[T], n1, n2 int) {
	a := mat.MustAtNthRef(m, n1)
	b := mat.MustAtNthRef(m, n2)
	*a, *b = *b, *a
}

// SwapRows exchanges rows i1 and i2 element by element. Panics when either
// row is out of range. Complexity: O(cols).
func SwapRows[T any](m mat.MutMatrix[T], i1, i2 int) {
	if i1 == i2 {
		mustRow(m, i1) // still validate
		return
	}
	for j := 0; j < m.Cols(); j++ {
		Swap(m, i1, j, i2, j)
	}
}

// SwapCols exchanges columns j1 and j2 element by element. Panics when
// either column is out of range. Complexity: O(rows).
func SwapCols[T any](m mat.MutMatrix[T], j1, j2 int) {
	if j1 == j2 {
		mustCol(m, j1)
		return
	}
	for i := 0; i < m.Rows(); i++ {
		Swap(m, i, j1, i, j2)
	}
}

func mustRow[T any](m mat.MutMatrix[T], i int) {
	if i < 0 || i >= m.Rows() {
		panic(mat.ErrOutOfRange)
	}
}

func mustCol[T any](m mat.MutMatrix[T], j int) {
	if j < 0 || j >= m.Cols() {
		panic(mat.ErrOutOfRange)
	}
}
