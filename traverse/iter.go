package traverse

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/matview/mat"
)

// Iter is a double-ended cursor over some lane of a matrix (all elements,
// a row, a column, a diagonal). Next consumes from the front, NextBack
// from the back; the two ends meet exactly once, so every element is
// yielded exactly once regardless of which end consumes it. Len is exact.
//
// The zero Iter is empty but valid.
type Iter[T any] struct {
	m     mat.Matrix[T]
	at    func(n int) (int, int) // cursor position -> subscripts
	front int
	back  int // exclusive
}

// Len returns the number of elements not yet consumed. Complexity: O(1).
func (it *Iter[T]) Len() int { return it.back - it.front }

// Next yields the front element and advances, or ok == false when the
// cursor is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	i, j := it.at(it.front)
	it.front++

	return mat.MustAt(it.m, i, j), true
}

// NextBack yields the back element and retreats, or ok == false when the
// cursor is exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--
	i, j := it.at(it.back)

	return mat.MustAt(it.m, i, j), true
}

// Seq drains the remaining elements front to back as a range-over-func
// sequence.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// MutIter is Iter's read-write twin: it yields pointers into the matrix
// storage instead of values.
type MutIter[T any] struct {
	m     mat.MutMatrix[T]
	at    func(n int) (int, int)
	front int
	back  int
}

// Len returns the number of elements not yet consumed. Complexity: O(1).
func (it *MutIter[T]) Len() int { return it.back - it.front }

// Next yields a pointer to the front element and advances.
func (it *MutIter[T]) Next() (*T, bool) {
	if it.front >= it.back {
		return nil, false
	}
	i, j := it.at(it.front)
	it.front++

	return mat.MustAtRef(it.m, i, j), true
}

// NextBack yields a pointer to the back element and retreats.
func (it *MutIter[T]) NextBack() (*T, bool) {
	if it.front >= it.back {
		return nil, false
	}
	it.back--
	i, j := it.at(it.back)

	return mat.MustAtRef(it.m, i, j), true
}

// Seq drains the remaining pointers front to back.
func (it *MutIter[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// All iterates every element in row-major order.
// Complexity: O(1) to build, O(1) per step.
func All[T any](m mat.Matrix[T]) *Iter[T] {
	s := mat.ShapeOf(m)

	return &Iter[T]{m: m, at: s.Subscripts, back: s.Size()}
}

// Row iterates row i left to right. Returns mat.ErrOutOfRange when the
// matrix has no such row.
func Row[T any](m mat.Matrix[T], i int) (*Iter[T], error) {
	s := mat.ShapeOf(m)
	if i < 0 || i >= s.Rows {
		return nil, fmt.Errorf("traverse.Row(%d): %w", i, mat.ErrOutOfRange)
	}

	return &Iter[T]{m: m, at: func(n int) (int, int) { return i, n }, back: s.Cols}, nil
}

// Col iterates column j top to bottom. Returns mat.ErrOutOfRange when the
// matrix has no such column.
func Col[T any](m mat.Matrix[T], j int) (*Iter[T], error) {
	s := mat.ShapeOf(m)
	if j < 0 || j >= s.Cols {
		return nil, fmt.Errorf("traverse.Col(%d): %w", j, mat.ErrOutOfRange)
	}

	return &Iter[T]{m: m, at: func(n int) (int, int) { return n, j }, back: s.Rows}, nil
}

// Diag iterates diagonal d bottom-left to top-right. Diagonals are
// numbered 0 (bottom-left corner) through NumDiags-1 (top-right corner);
// any other d returns mat.ErrOutOfRange.
func Diag[T any](m mat.Matrix[T], d int) (*Iter[T], error) {
	s := mat.ShapeOf(m)
	if d < 0 || d >= s.NumDiags() {
		return nil, fmt.Errorf("traverse.Diag(%d): %w", d, mat.ErrOutOfRange)
	}
	si, sj := s.DiagStart(d)

	return &Iter[T]{m: m, at: func(n int) (int, int) { return si + n, sj + n }, back: s.DiagLen(d)}, nil
}

// MainDiag iterates the diagonal through (0, 0). On an empty matrix the
// cursor is empty.
func MainDiag[T any](m mat.Matrix[T]) *Iter[T] {
	s := mat.ShapeOf(m)

	return &Iter[T]{m: m, at: func(n int) (int, int) { return n, n }, back: min(s.Rows, s.Cols)}
}

// AllMut is All yielding pointers.
func AllMut[T any](m mat.MutMatrix[T]) *MutIter[T] {
	s := mat.ShapeOf[T](m)

	return &MutIter[T]{m: m, at: s.Subscripts, back: s.Size()}
}

// RowMut is Row yielding pointers.
func RowMut[T any](m mat.MutMatrix[T], i int) (*MutIter[T], error) {
	s := mat.ShapeOf[T](m)
	if i < 0 || i >= s.Rows {
		return nil, fmt.Errorf("traverse.RowMut(%d): %w", i, mat.ErrOutOfRange)
	}

	return &MutIter[T]{m: m, at: func(n int) (int, int) { return i, n }, back: s.Cols}, nil
}

// ColMut is Col yielding pointers.
func ColMut[T any](m mat.MutMatrix[T], j int) (*MutIter[T], error) {
	s := mat.ShapeOf[T](m)
	if j < 0 || j >= s.Cols {
		return nil, fmt.Errorf("traverse.ColMut(%d): %w", j, mat.ErrOutOfRange)
	}

	return &MutIter[T]{m: m, at: func(n int) (int, int) { return n, j }, back: s.Rows}, nil
}

// DiagMut is Diag yielding pointers.
func DiagMut[T any](m mat.MutMatrix[T], d int) (*MutIter[T], error) {
	s := mat.ShapeOf[T](m)
	if d < 0 || d >= s.NumDiags() {
		return nil, fmt.Errorf("traverse.DiagMut(%d): %w", d, mat.ErrOutOfRange)
	}
	si, sj := s.DiagStart(d)

	return &MutIter[T]{m: m, at: func(n int) (int, int) { return si + n, sj + n }, back: s.DiagLen(d)}, nil
}

// MainDiagMut is MainDiag yielding pointers.
func MainDiagMut[T any](m mat.MutMatrix[T]) *MutIter[T] {
	s := mat.ShapeOf[T](m)

	return &MutIter[T]{m: m, at: func(n int) (int, int) { return n, n }, back: min(s.Rows, s.Cols)}
}
