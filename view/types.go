package view

import (
	"fmt"

	"github.com/katalvlaran/matview/mat"
)

// Strategy is a pure coordinate transform between a view and its base.
// Implementations must be stateless with respect to the matrices they
// are applied to: the same (base, i, j) always yields the same answer.
type Strategy interface {
	// Shape returns the dimensions a view exposes over a base of the
	// given shape.
	Shape(base mat.Shape) mat.Shape

	// Map translates view subscripts (already validated against Shape)
	// into base subscripts. ok == false means the view cell has no
	// backing element in the base.
	Map(base mat.Shape, i, j int) (bi, bj int, ok bool)
}

// View is a read-only lazy reinterpretation of a base matrix.
// It implements mat.Matrix itself, so views nest freely.
type View[T any] struct {
	base  mat.Matrix[T]
	strat Strategy
}

// New wraps base in one view per strategy, left to right:
// New(m, A, B) is the same matrix as New(New(m, A), B).
// With no strategies the view is the identity.
//
// New validates eagerly by computing the resulting shape once; strategies
// with unsatisfiable parameters (notably Reshape with a mismatched element
// count) panic here rather than on first access.
func New[T any](base mat.Matrix[T], strategies ...Strategy) *View[T] {
	if len(strategies) == 0 {
		strategies = []Strategy{Identity{}}
	}
	var v *View[T]
	m := base
	for _, s := range strategies {
		_ = s.Shape(mat.ShapeOf(m)) // eager validation
		v = &View[T]{base: m, strat: s}
		m = v
	}

	return v
}

// Rows returns the number of rows the view exposes. Complexity: O(1)
// per nesting level.
func (v *View[T]) Rows() int { return v.strat.Shape(mat.ShapeOf(v.base)).Rows }

// Cols returns the number of columns the view exposes.
func (v *View[T]) Cols() int { return v.strat.Shape(mat.ShapeOf(v.base)).Cols }

// At reads the base element backing view cell (i, j).
// Returns mat.ErrOutOfRange when (i, j) is outside the view, or when the
// strategy maps it to no base element.
func (v *View[T]) At(i, j int) (T, error) {
	var zero T
	bi, bj, err := v.resolve(i, j)
	if err != nil {
		return zero, fmt.Errorf("View.At(%d,%d): %w", i, j, err)
	}

	return v.base.At(bi, bj)
}

func (v *View[T]) resolve(i, j int) (int, int, error) {
	bs := mat.ShapeOf(v.base)
	if !v.strat.Shape(bs).Contains(i, j) {
		return 0, 0, mat.ErrOutOfRange
	}
	bi, bj, ok := v.strat.Map(bs, i, j)
	if !ok {
		return 0, 0, fmt.Errorf("unmapped cell: %w", mat.ErrOutOfRange)
	}

	return bi, bj, nil
}

// MutView is a read-write lazy reinterpretation of a base matrix.
// It implements mat.MutMatrix, so writes through the view land in the
// base storage.
type MutView[T any] struct {
	base  mat.MutMatrix[T]
	strat Strategy
}

// NewMut is New for mutable bases. The same nesting and eager-validation
// rules apply.
func NewMut[T any](base mat.MutMatrix[T], strategies ...Strategy) *MutView[T] {
	if len(strategies) == 0 {
		strategies = []Strategy{Identity{}}
	}
	var v *MutView[T]
	m := base
	for _, s := range strategies {
		_ = s.Shape(mat.ShapeOf[T](m))
		v = &MutView[T]{base: m, strat: s}
		m = v
	}

	return v
}

// Rows returns the number of rows the view exposes.
func (v *MutView[T]) Rows() int { return v.strat.Shape(mat.ShapeOf[T](v.base)).Rows }

// Cols returns the number of columns the view exposes.
func (v *MutView[T]) Cols() int { return v.strat.Shape(mat.ShapeOf[T](v.base)).Cols }

// At reads the base element backing view cell (i, j).
func (v *MutView[T]) At(i, j int) (T, error) {
	var zero T
	bi, bj, err := v.resolve(i, j)
	if err != nil {
		return zero, fmt.Errorf("MutView.At(%d,%d): %w", i, j, err)
	}

	return v.base.At(bi, bj)
}

// AtRef returns a pointer to the base element backing view cell (i, j).
func (v *MutView[T]) AtRef(i, j int) (*T, error) {
	bi, bj, err := v.resolve(i, j)
	if err != nil {
		return nil, fmt.Errorf("MutView.AtRef(%d,%d): %w", i, j, err)
	}

	return v.base.AtRef(bi, bj)
}

func (v *MutView[T]) resolve(i, j int) (int, int, error) {
	bs := mat.ShapeOf[T](v.base)
	if !v.strat.Shape(bs).Contains(i, j) {
		return 0, 0, mat.ErrOutOfRange
	}
	bi, bj, ok := v.strat.Map(bs, i, j)
	if !ok {
		return 0, 0, fmt.Errorf("unmapped cell: %w", mat.ErrOutOfRange)
	}

	return bi, bj, nil
}
