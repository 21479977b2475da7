// Package inplace rewrites a matrix through its own storage: element and
// lane swaps, sorting, and the geometric transforms (transpose, flips,
// rotations, circular shifts) executed without allocating a second matrix.
//
// Every function here mutates its argument and needs write access, so the
// argument is a mat.MutMatrix (or mat.Reshapable when the operation
// changes the dimensions, as the rectangular Transpose and the quarter
// rotations do). For a copying, lazy alternative see package view: each
// transform here has a strategy counterpart producing the same element
// layout.
//
// Out-of-range subscripts passed to the swap helpers are caller bugs and
// panic; the transforms themselves never go out of bounds.
//
// Example - turn a matrix upside down without a copy:
//
//	m, _ := mat.FromRows([][]int{{1, 2}, {3, 4}})
//	inplace.Reverse[int](m)
//	// m is now [4, 3] / [2, 1]
package inplace
