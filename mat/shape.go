// Package mat: Shape, the coordinate model.
//
// Shape is the pure arithmetic core of matview: row-major linear<->(row,col)
// conversion and diagonal bookkeeping. Every distinct view shape in this
// module is a Shape, and Index/Subscripts are exact inverses for in-bounds
// input, which the iterators and strategies rely on.

package mat

// Shape is the (Rows, Cols) pair of a matrix or view.
//
// A Shape with Rows == 0 or Cols == 0 is "empty": it holds no elements and
// has zero diagonals.
type Shape struct {
	Rows int `json:"rows"` // number of rows, >= 0
	Cols int `json:"cols"` // number of columns, >= 0
}

// Size returns the number of elements, Rows*Cols.
// Complexity: O(1).
func (s Shape) Size() int { return s.Rows * s.Cols }

// IsEmpty reports whether the shape holds no elements.
// Complexity: O(1).
func (s Shape) IsEmpty() bool { return s.Rows == 0 || s.Cols == 0 }

// Transposed returns the shape with Rows and Cols exchanged.
// Complexity: O(1).
func (s Shape) Transposed() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// Contains reports whether (i, j) addresses an element of the shape.
// Complexity: O(1).
func (s Shape) Contains(i, j int) bool {
	return i >= 0 && i < s.Rows && j >= 0 && j < s.Cols
}

// ContainsNth reports whether linear index n addresses an element.
// Complexity: O(1).
func (s Shape) ContainsNth(n int) bool { return n >= 0 && n < s.Size() }

// Index converts (i, j) to the row-major linear index i*Cols + j.
// It performs no bounds checking; for a checked variant see CheckedIndex.
// Complexity: O(1).
func (s Shape) Index(i, j int) int { return i*s.Cols + j }

// Subscripts converts a row-major linear index back to (row, col).
// It performs no bounds checking and requires Cols > 0; for a checked
// variant see CheckedSubscripts. Exact inverse of Index for in-bounds n.
// Complexity: O(1).
func (s Shape) Subscripts(n int) (int, int) { return n / s.Cols, n % s.Cols }

// CheckedIndex converts (i, j) to a linear index, or returns ErrOutOfRange
// when the coordinates fall outside the shape.
// Complexity: O(1).
func (s Shape) CheckedIndex(i, j int) (int, error) {
	if !s.Contains(i, j) {
		return 0, ErrOutOfRange
	}

	return s.Index(i, j), nil
}

// CheckedSubscripts converts a linear index to (row, col), or returns
// ErrOutOfRange when n does not address an element.
// Complexity: O(1).
func (s Shape) CheckedSubscripts(n int) (int, int, error) {
	if !s.ContainsNth(n) {
		return 0, 0, ErrOutOfRange
	}
	i, j := s.Subscripts(n)

	return i, j, nil
}

// NumDiags returns the number of diagonals, Rows+Cols-1 for a non-empty
// shape and 0 for an empty one. The empty case is explicit so the count
// never underflows.
// Complexity: O(1).
func (s Shape) NumDiags() int {
	if s.IsEmpty() {
		return 0
	}

	return s.Rows + s.Cols - 1
}

// DiagLen returns the length of diagonal d, where d = 0 names the
// bottom-left corner and d = NumDiags()-1 the top-right one.
// Returns 0 for an empty shape or a d outside [0, NumDiags()).
//
//	For a 4×3 shape the lengths are [1, 2, 3, 3, 2, 1].
//
// Complexity: O(1).
func (s Shape) DiagLen(d int) int {
	nd := s.NumDiags()
	if d < 0 || d >= nd {
		return 0
	}
	// min(d+1, Rows, Cols, NumDiags-d): the first pair bounds growth from
	// the bottom-left corner, the last shrinks toward the top-right one.
	l := d + 1
	if s.Rows < l {
		l = s.Rows
	}
	if s.Cols < l {
		l = s.Cols
	}
	if nd-d < l {
		l = nd - d
	}

	return l
}

// DiagStart returns the (row, col) of the first element of diagonal d,
// the top-left end of the diagonal. d = 0 starts at (Rows-1, 0); past the
// main corner the start walks along the top row.
// Requires a non-empty shape and 0 <= d < NumDiags().
// Complexity: O(1).
func (s Shape) DiagStart(d int) (int, int) {
	if last := s.Rows - 1; d <= last {
		return last - d, 0
	} else {
		return 0, d - last
	}
}
