// Package mat defines the capability contract and coordinate model that the
// rest of matview layers on.
//
// The mat package provides:
//
//   - Matrix[T] and MutMatrix[T], the minimal read and write capability
//     interfaces any concrete storage satisfies by structural conformance.
//   - Shape, the (Rows, Cols) pair with row-major index arithmetic and
//     diagonal bookkeeping (NumDiags, DiagLen).
//   - Dense[T], a row-major flat-slice storage type, and Slice2D[T], a thin
//     adapter over [][]T, both first-class matrices.
//   - Derived accessors (AtNth, First, Last, Set) and structural predicates
//     (IsSquare, IsSymmetric, IsDiagonal, ...) expressed purely through the
//     capability contract, so they work on any matrix or view.
//
// Accessors come in two tiers: the checked tier (At, AtNth, Set) returns
// ErrOutOfRange for invalid coordinates and is the default; the Must tier
// (MustAt, MustAtRef, MustAtNth) is for callers that have already proven
// bounds and panics on violation.
//
// See the examples in this package and view for usage patterns.
package mat
