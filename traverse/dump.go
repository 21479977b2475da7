package traverse

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matview/mat"
)

// FprintRows writes a row-by-row dump of m to w:
//
//	Rows
//	0: [1 2 3]
//	1: [4 5 6]
func FprintRows[T any](w io.Writer, m mat.Matrix[T]) error {
	return fprintLanes(w, "Rows", Rows[T](m))
}

// FprintCols writes a column-by-column dump of m to w.
func FprintCols[T any](w io.Writer, m mat.Matrix[T]) error {
	return fprintLanes(w, "Cols", Cols[T](m))
}

// FprintDiags writes a diagonal-by-diagonal dump of m to w, bottom-left
// corner first.
func FprintDiags[T any](w io.Writer, m mat.Matrix[T]) error {
	return fprintLanes(w, "Diags", Diags[T](m))
}

// SprintRows renders FprintRows to a string.
func SprintRows[T any](m mat.Matrix[T]) string {
	var b strings.Builder
	_ = FprintRows[T](&b, m)

	return b.String()
}

// SprintCols renders FprintCols to a string.
func SprintCols[T any](m mat.Matrix[T]) string {
	var b strings.Builder
	_ = FprintCols[T](&b, m)

	return b.String()
}

// SprintDiags renders FprintDiags to a string.
func SprintDiags[T any](m mat.Matrix[T]) string {
	var b strings.Builder
	_ = FprintDiags[T](&b, m)

	return b.String()
}

func fprintLanes[T any](w io.Writer, title string, lanes [][]T) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return fmt.Errorf("dump %s: %w", title, err)
	}
	for n, lane := range lanes {
		if _, err := fmt.Fprintf(w, "%d: %v\n", n, lane); err != nil {
			return fmt.Errorf("dump %s: %w", title, err)
		}
	}

	return nil
}
