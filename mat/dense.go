// Package mat: Dense, the row-major flat-slice storage.
//
// Dense is the reference implementation of the capability contract: a
// cache-friendly flat buffer with the explicit index formula i*cols + j.
// It is also the materialization target for Collect, which turns any view
// back into owned storage.

package mat

import (
	"fmt"
	"iter"
	"strings"
)

// Dense is a row-major matrix of T values.
// shape holds the dimensions and data holds shape.Size() elements in
// row-major order. The zero value is an empty 0×0 matrix.
type Dense[T any] struct {
	shape Shape // current dimensions
	data  []T   // flat backing storage, length == shape.Size()
}

// NewDense creates a rows×cols Dense matrix of zero-valued elements.
// Zero dimensions are permitted and produce an empty matrix; negative
// dimensions return ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{
		shape: Shape{Rows: rows, Cols: cols},
		data:  make([]T, rows*cols),
	}, nil
}

// FromSlice wraps a row-major element slice as a Dense matrix with the given
// column count. The slice is NOT copied; the matrix aliases it.
// Returns ErrBadShape when cols is negative, when cols == 0 with a non-empty
// slice, or when len(data) is not divisible by cols.
// Complexity: O(1).
func FromSlice[T any](data []T, cols int) (*Dense[T], error) {
	if cols < 0 || (cols == 0 && len(data) != 0) {
		return nil, fmt.Errorf("FromSlice(cols=%d): %w", cols, ErrBadShape)
	}
	if cols == 0 {
		return &Dense[T]{}, nil
	}
	if len(data)%cols != 0 {
		return nil, fmt.Errorf("FromSlice(len=%d,cols=%d): %w", len(data), cols, ErrBadShape)
	}

	return &Dense[T]{
		shape: Shape{Rows: len(data) / cols, Cols: cols},
		data:  data,
	}, nil
}

// FromRows copies a [][]T into a fresh Dense matrix.
// All rows must have the same length; uneven input returns ErrRagged.
// An empty outer slice (or uniformly empty rows) produces an empty matrix.
// Complexity: O(rows*cols) time and memory.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromRows(row %d: len %d != %d): %w", i, len(r), cols, ErrRagged)
		}
		data = append(data, r...)
	}
	if cols == 0 {
		return &Dense[T]{}, nil
	}

	return &Dense[T]{
		shape: Shape{Rows: len(rows), Cols: cols},
		data:  data,
	}, nil
}

// FromSeq collects an element sequence into a Dense matrix with the given
// column count. The sequence length must be divisible by cols, otherwise
// ErrBadShape is returned.
// Complexity: O(n) time and memory for a sequence of n elements.
func FromSeq[T any](seq iter.Seq[T], cols int) (*Dense[T], error) {
	var data []T
	for v := range seq {
		data = append(data, v)
	}

	return FromSlice(data, cols)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.shape.Rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.shape.Cols }

// At retrieves the element at (i, j), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	n, err := m.shape.CheckedIndex(i, j)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("Dense.At(%d,%d): %w", i, j, err)
	}

	return m.data[n], nil
}

// AtRef returns an exclusive reference to the element at (i, j), or
// ErrOutOfRange. The pointer stays valid for the lifetime of the matrix.
// Complexity: O(1).
func (m *Dense[T]) AtRef(i, j int) (*T, error) {
	n, err := m.shape.CheckedIndex(i, j)
	if err != nil {
		return nil, fmt.Errorf("Dense.AtRef(%d,%d): %w", i, j, err)
	}

	return &m.data[n], nil
}

// Set assigns v at (i, j), or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) error {
	n, err := m.shape.CheckedIndex(i, j)
	if err != nil {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, err)
	}
	m.data[n] = v

	return nil
}

// SwapDims exchanges the reported dimensions without touching elements,
// satisfying Reshapable. Callers pair it with a storage permutation
// (see inplace.Transpose); calling it alone reinterprets the same
// row-major buffer under the transposed shape.
// Complexity: O(1).
func (m *Dense[T]) SwapDims() { m.shape = m.shape.Transposed() }

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(rows*cols) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{shape: m.shape, data: cp}
}

// String implements fmt.Stringer for easy debugging: one bracketed line
// per row, elements formatted with %v.
// Complexity: O(rows*cols).
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.shape.Rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.shape.Cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[m.shape.Index(i, j)])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
