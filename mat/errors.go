// Package mat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matview.
// All operations return these sentinels and tests check them via errors.Is.
// No operation panics on a user-triggered condition; panics are reserved for
// the Must tier and for contract violations documented as fatal (reshape
// element-count mismatch, in-place swaps on proven-in-bounds positions).

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers still use errors.Is to match.

var (
	// ErrOutOfRange indicates that an index (row, column, linear or diagonal)
	// is outside valid bounds. Checked accessors MUST return this, not panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrBadShape is returned when a requested shape is invalid, e.g. a
	// negative dimension or a data length not divisible by the column count.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrRagged indicates that a [][]T source has rows of unequal length.
	ErrRagged = errors.New("mat: ragged rows")

	// ErrShapeMismatch indicates that a reshape target does not preserve the
	// element count. Reshape views treat this as a fatal precondition and
	// panic with this sentinel's text at construction time.
	ErrShapeMismatch = errors.New("mat: element count mismatch")
)
