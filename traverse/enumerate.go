package traverse

import (
	"iter"

	"github.com/katalvlaran/matview/mat"
)

// Cell pairs an element with the subscripts it was read from.
type Cell[T any] struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value T   `json:"value"`
}

// CellIter is a double-ended cursor yielding cells in row-major order.
type CellIter[T any] struct {
	m     mat.Matrix[T]
	s     mat.Shape
	front int
	back  int
}

// Enumerate iterates every element together with its subscripts.
func Enumerate[T any](m mat.Matrix[T]) *CellIter[T] {
	s := mat.ShapeOf(m)

	return &CellIter[T]{m: m, s: s, back: s.Size()}
}

// Len returns the number of cells not yet consumed. Complexity: O(1).
func (it *CellIter[T]) Len() int { return it.back - it.front }

// Next yields the front cell and advances.
func (it *CellIter[T]) Next() (Cell[T], bool) {
	if it.front >= it.back {
		return Cell[T]{}, false
	}
	i, j := it.s.Subscripts(it.front)
	it.front++

	return Cell[T]{Row: i, Col: j, Value: mat.MustAt(it.m, i, j)}, true
}

// NextBack yields the back cell and retreats.
func (it *CellIter[T]) NextBack() (Cell[T], bool) {
	if it.front >= it.back {
		return Cell[T]{}, false
	}
	it.back--
	i, j := it.s.Subscripts(it.back)

	return Cell[T]{Row: i, Col: j, Value: mat.MustAt(it.m, i, j)}, true
}

// Seq drains the remaining cells front to back.
func (it *CellIter[T]) Seq() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
