// Package traverse walks matrices: element iterators over rows, columns
// and diagonals, cell enumeration, and whole-matrix decomposition.
//
// The central type is Iter, a double-ended cursor with an exact length:
// Next consumes from the front, NextBack from the back, and Len always
// reports how many elements remain. MutIter is the same cursor yielding
// pointers, for in-place work. Both bridge to range-over-func loops via
// Seq.
//
// Diagonals are numbered bottom-left to top-right: diagonal 0 is the
// single bottom-left corner cell, and each diagonal walks up-right with
// step (+1, +1). A rows x cols matrix has rows+cols-1 diagonals (none when
// empty), and the main diagonal - the one through (0, 0) - is diagonal
// rows-1.
//
//	1 2 3        diag 0: [7]
//	4 5 6   =>   diag 2: [1 5 9]   (main)
//	7 8 9        diag 4: [3]
//
// Rows, Cols and Diags materialize the whole matrix at once; Fprint and
// Sprint helpers render those decompositions for debugging.
//
// Iterators capture the matrix shape at construction. Reshaping the
// underlying matrix while a cursor is live is a caller bug.
package traverse
