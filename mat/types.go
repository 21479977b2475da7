// Package mat: the capability contract.
// This file intentionally contains ONLY the interfaces callers implement to
// participate in matview. Errors live in errors.go, coordinate arithmetic in
// shape.go, concrete storage in dense.go and slice2d.go.

package mat

// Matrix is the read capability: any entity that reports its dimensions and
// fetches an element by (row, column). Everything else in matview (views,
// iterators, predicates, in-place algorithms) is derived from this contract.
//
// Contract:
//   - Rows() and Cols() are non-negative and stable for the lifetime of a
//     single traversal.
//   - At(i, j) returns the element for 0 <= i < Rows(), 0 <= j < Cols(),
//     and ErrOutOfRange otherwise. Absence is a normal branch, not a fault.
type Matrix[T any] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j), or ErrOutOfRange when the
	// coordinates fall outside the matrix. Complexity: O(1) for concrete
	// storage; views add the cost of their coordinate transform.
	At(i, j int) (T, error)
}

// MutMatrix extends Matrix with write capability.
//
// AtRef returns an exclusive reference to the element at (i, j): the matrix
// owns its elements, and the pointer must not outlive the matrix or be held
// across a mutation that moves storage.
type MutMatrix[T any] interface {
	Matrix[T]

	// AtRef returns a pointer to the element at (i, j), or ErrOutOfRange
	// when the coordinates fall outside the matrix. Complexity: O(1).
	AtRef(i, j int) (*T, error)
}

// Reshapable is a MutMatrix whose dimensions can be exchanged in place.
// Rectangular in-place transposition and quarter-turn rotations require it:
// they permute the backing storage and then flip the reported shape.
// After SwapDims, Rows() must return the previous Cols() and vice versa.
type Reshapable[T any] interface {
	MutMatrix[T]

	// SwapDims exchanges the reported dimensions without touching elements.
	SwapDims()
}

// Number is the constraint for predicates that need arithmetic negation
// (IsSkewSymmetric). It covers the built-in signed numeric kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}
