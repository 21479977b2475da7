package traverse

import "github.com/katalvlaran/matview/mat"

// Rows materializes the matrix as one slice per row, top to bottom.
// Complexity: O(rows*cols).
func Rows[T any](m mat.Matrix[T]) [][]T {
	s := mat.ShapeOf(m)
	out := make([][]T, s.Rows)
	for i := range out {
		out[i] = make([]T, s.Cols)
		for j := range out[i] {
			out[i][j] = mat.MustAt(m, i, j)
		}
	}

	return out
}

// Cols materializes the matrix as one slice per column, left to right.
// Complexity: O(rows*cols).
func Cols[T any](m mat.Matrix[T]) [][]T {
	s := mat.ShapeOf(m)
	out := make([][]T, s.Cols)
	for j := range out {
		out[j] = make([]T, s.Rows)
		for i := range out[j] {
			out[j][i] = mat.MustAt(m, i, j)
		}
	}

	return out
}

// Diags materializes the matrix as one slice per diagonal, bottom-left
// corner first. An empty matrix decomposes into no diagonals.
// Complexity: O(rows*cols).
func Diags[T any](m mat.Matrix[T]) [][]T {
	s := mat.ShapeOf(m)
	out := make([][]T, s.NumDiags())
	for d := range out {
		si, sj := s.DiagStart(d)
		out[d] = make([]T, s.DiagLen(d))
		for n := range out[d] {
			out[d][n] = mat.MustAt(m, si+n, sj+n)
		}
	}

	return out
}
