// Package mat: structural predicates.
//
// These are descriptive checks over any Matrix: shape classification and
// the classic symmetry/diagonality tests. All of them are read-only and
// run in at most O(rows*cols).

package mat

// IsSquare reports whether m has as many rows as columns. Empty matrices
// count as square. Complexity: O(1).
func IsSquare[T any](m Matrix[T]) bool { return m.Rows() == m.Cols() }

// IsVector reports whether m is a single row or a single column.
// Complexity: O(1).
func IsVector[T any](m Matrix[T]) bool { return m.Rows() == 1 || m.Cols() == 1 }

// IsSingleton reports whether m is exactly 1×1. Complexity: O(1).
func IsSingleton[T any](m Matrix[T]) bool { return m.Rows() == 1 && m.Cols() == 1 }

// IsHorizontal reports whether m has no more rows than columns.
// Complexity: O(1).
func IsHorizontal[T any](m Matrix[T]) bool { return m.Rows() <= m.Cols() }

// IsVertical reports whether m has no fewer rows than columns.
// Complexity: O(1).
func IsVertical[T any](m Matrix[T]) bool { return m.Rows() >= m.Cols() }

// IsSymmetric reports whether m equals its transpose, compared in row-major
// order of the transposed shape. Under this definition every single-row or
// single-column matrix is symmetric; an empty matrix is not.
// Complexity: O(rows*cols).
func IsSymmetric[T comparable](m Matrix[T]) bool {
	if IsEmpty(m) {
		return false
	}
	n := 0
	for j := 0; j < m.Cols(); j++ { // row-major walk of the transpose
		for i := 0; i < m.Rows(); i++ {
			if MustAtNth(m, n) != MustAt(m, i, j) {
				return false
			}
			n++
		}
	}

	return true
}

// IsSkewSymmetric reports whether m equals the negation of its transpose.
// An empty matrix is not skew-symmetric. Complexity: O(rows*cols).
func IsSkewSymmetric[T Number](m Matrix[T]) bool {
	if IsEmpty(m) {
		return false
	}
	n := 0
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			if MustAtNth(m, n) != -MustAt(m, i, j) {
				return false
			}
			n++
		}
	}

	return true
}

// IsDiagonal reports whether every entry outside the main diagonal holds
// one common "zero" value and every entry on it holds something else, and
// returns that zero value on success. The zero candidate is taken from
// position (0,1), or (1,0) for a single column. A singleton is diagonal
// (with no meaningful zero); an empty matrix is not diagonal.
// Complexity: O(rows*cols).
func IsDiagonal[T comparable](m Matrix[T]) (T, bool) {
	var none T
	if IsEmpty(m) {
		return none, false
	}
	if IsSingleton(m) {
		return none, true
	}
	zero, ok := offDiagPivot(m)
	if !ok {
		return none, false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			el := MustAt(m, i, j)
			if i == j {
				if el == zero {
					return none, false
				}
			} else if el != zero {
				return none, false
			}
		}
	}

	return zero, true
}

// IsScalar reports whether m is a square diagonal matrix whose diagonal
// entries all equal the element at (0,0). A singleton is scalar;
// rectangular matrices are not. Complexity: O(rows*cols).
func IsScalar[T comparable](m Matrix[T]) bool {
	if !IsSquare[T](m) || IsEmpty(m) {
		return false
	}
	if IsSingleton(m) {
		return true
	}
	one := MustAt(m, 0, 0)
	zero, _ := offDiagPivot(m) // square non-singleton always has (0,1)
	if one == zero {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			el := MustAt(m, i, j)
			if i == j {
				if el != one {
					return false
				}
			} else if el != zero {
				return false
			}
		}
	}

	return true
}

// IsConstant reports whether all elements of m are equal and, if so,
// returns that element. An empty matrix is not constant.
// Complexity: O(rows*cols).
func IsConstant[T comparable](m Matrix[T]) (T, bool) {
	var zero T
	if IsEmpty(m) {
		return zero, false
	}
	el := MustAt(m, 0, 0)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if MustAt(m, i, j) != el {
				return zero, false
			}
		}
	}

	return el, true
}

// Position returns the subscripts of the first element (in row-major order)
// matching pred, or ok == false when none does.
// Complexity: O(rows*cols).
func Position[T any](m Matrix[T], pred func(T) bool) (int, int, bool) {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if pred(MustAt(m, i, j)) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// offDiagPivot picks the first off-diagonal element to serve as the "zero"
// candidate for diagonality checks: (0,1) when a second column exists,
// (1,0) for single-column matrices.
func offDiagPivot[T any](m Matrix[T]) (T, bool) {
	if v, err := m.At(0, 1); err == nil {
		return v, true
	}
	if v, err := m.At(1, 0); err == nil {
		return v, true
	}
	var zero T

	return zero, false
}
