// Package view provides lazy, zero-copy reinterpretations of a matrix.
//
// A Strategy is a pure coordinate transform: given the base shape it
// announces the shape the view exposes, and for every view cell it names
// the base cell backing it. View and MutView wrap any mat.Matrix /
// mat.MutMatrix with a Strategy, so reads (and, for MutView, writes) pass
// straight through to the base storage - no element is ever copied.
//
// Bundled strategies:
//
//   - Identity, Transpose, RotateR, RotateL - axis remappings
//   - FlipH, FlipV, Reverse                 - mirrorings
//   - ShiftFront, ShiftBack                 - circular rotation of the
//     row-major order
//   - Submatrix                             - inclusive rectangular window
//     with clamped bounds
//   - Reshape                               - same elements, new dimensions
//     (element counts must agree)
//   - IndexMap                              - arbitrary cell-by-cell
//     remapping driven by an index matrix
//   - Pipeline                              - composition, applied
//     right-to-left like function composition
//
// Strategies compose two equivalent ways: nesting views
// (view.New(m, A) then view.New(..., B)) or a single Pipeline. A view of
// a view costs one extra coordinate hop per access and nothing more.
//
// Example: transpose of a 2x3 without touching the data.
//
//	m, _ := mat.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	tr := view.New[int](m, view.Transpose{})
//	// tr is 3x2; tr.At(2, 0) == 3
//
// To materialize a view into fresh storage, use mat.Collect.
package view
