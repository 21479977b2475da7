package view

import (
	"fmt"

	"github.com/katalvlaran/matview/mat"
)

// Identity exposes the base unchanged. Useful as a neutral element when
// building strategy lists programmatically.
type Identity struct{}

func (Identity) Shape(base mat.Shape) mat.Shape { return base }

func (Identity) Map(_ mat.Shape, i, j int) (int, int, bool) { return i, j, true }

// Transpose mirrors the base across its main diagonal: view (i, j) reads
// base (j, i).
type Transpose struct{}

func (Transpose) Shape(base mat.Shape) mat.Shape { return base.Transposed() }

func (Transpose) Map(_ mat.Shape, i, j int) (int, int, bool) { return j, i, true }

// RotateR turns the base a quarter turn clockwise.
type RotateR struct{}

func (RotateR) Shape(base mat.Shape) mat.Shape { return base.Transposed() }

func (RotateR) Map(base mat.Shape, i, j int) (int, int, bool) {
	return base.Rows - 1 - j, i, true
}

// RotateL turns the base a quarter turn counter-clockwise.
type RotateL struct{}

func (RotateL) Shape(base mat.Shape) mat.Shape { return base.Transposed() }

func (RotateL) Map(base mat.Shape, i, j int) (int, int, bool) {
	return j, base.Cols - 1 - i, true
}

// FlipH mirrors the base horizontally: the first column becomes the last.
type FlipH struct{}

func (FlipH) Shape(base mat.Shape) mat.Shape { return base }

func (FlipH) Map(base mat.Shape, i, j int) (int, int, bool) {
	return i, base.Cols - 1 - j, true
}

// FlipV mirrors the base vertically: the first row becomes the last.
type FlipV struct{}

func (FlipV) Shape(base mat.Shape) mat.Shape { return base }

func (FlipV) Map(base mat.Shape, i, j int) (int, int, bool) {
	return base.Rows - 1 - i, j, true
}

// Reverse reads the base back to front in row-major order. Equivalent to
// FlipH composed with FlipV, and to a half turn.
type Reverse struct{}

func (Reverse) Shape(base mat.Shape) mat.Shape { return base }

func (Reverse) Map(base mat.Shape, i, j int) (int, int, bool) {
	return base.Rows - 1 - i, base.Cols - 1 - j, true
}

// ShiftFront rotates the row-major order of the base toward the front:
// view element n reads base element (n + By) mod size. A By of size is a
// full cycle, so only By mod size matters; negative By rotates backward.
type ShiftFront struct {
	By int `json:"by"`
}

func (s ShiftFront) Shape(base mat.Shape) mat.Shape { return base }

func (s ShiftFront) Map(base mat.Shape, i, j int) (int, int, bool) {
	bi, bj := base.Subscripts(rotated(base.Index(i, j), s.By, base.Size()))

	return bi, bj, true
}

// ShiftBack rotates the row-major order of the base toward the back:
// view element n reads base element (n - By) mod size.
type ShiftBack struct {
	By int `json:"by"`
}

func (s ShiftBack) Shape(base mat.Shape) mat.Shape { return base }

func (s ShiftBack) Map(base mat.Shape, i, j int) (int, int, bool) {
	bi, bj := base.Subscripts(rotated(base.Index(i, j), -s.By, base.Size()))

	return bi, bj, true
}

// rotated maps linear index n to (n + by) mod size, well-defined for
// negative by. size must be positive; Map is never reached on an empty
// base because no view cell passes the bounds check.
func rotated(n, by, size int) int {
	return ((n+by)%size + size) % size
}

// Submatrix exposes the inclusive rectangular window
// [FromRow, ToRow] x [FromCol, ToCol] of the base. End bounds past the
// base are clamped to the last row/column; a start past its end bound
// yields an empty view.
type Submatrix struct {
	FromRow int `json:"from_row"`
	ToRow   int `json:"to_row"`
	FromCol int `json:"from_col"`
	ToCol   int `json:"to_col"`
}

func (s Submatrix) Shape(base mat.Shape) mat.Shape {
	return mat.Shape{
		Rows: spanLen(s.FromRow, s.ToRow, base.Rows),
		Cols: spanLen(s.FromCol, s.ToCol, base.Cols),
	}
}

func (s Submatrix) Map(_ mat.Shape, i, j int) (int, int, bool) {
	return s.FromRow + i, s.FromCol + j, true
}

// spanLen is the length of the inclusive span [from, to] clamped into a
// dimension of dim elements.
func spanLen(from, to, dim int) int {
	if to > dim-1 {
		to = dim - 1
	}
	if from < 0 || from > to {
		return 0
	}

	return to - from + 1
}

// Reshape exposes the same row-major element sequence under new
// dimensions. The element counts must agree; a mismatch (or a negative
// dimension) panics when the view is constructed.
type Reshape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func (r Reshape) Shape(base mat.Shape) mat.Shape {
	if r.Rows < 0 || r.Cols < 0 || r.Rows*r.Cols != base.Size() {
		panic(fmt.Errorf("view: cannot reshape %dx%d into %dx%d: %w", base.Rows, base.Cols, r.Rows, r.Cols, mat.ErrShapeMismatch))
	}

	return mat.Shape{Rows: r.Rows, Cols: r.Cols}
}

func (r Reshape) Map(base mat.Shape, i, j int) (int, int, bool) {
	bi, bj := base.Subscripts(i*r.Cols + j)

	return bi, bj, true
}

// IndexMap remaps every cell independently: the view has the shape of M,
// and view cell (i, j) reads the base element at linear index M[i][j].
// Indices outside the base leave the cell unbacked.
type IndexMap struct {
	M mat.Matrix[int]
}

func (im IndexMap) Shape(mat.Shape) mat.Shape { return mat.ShapeOf(im.M) }

func (im IndexMap) Map(base mat.Shape, i, j int) (int, int, bool) {
	n, err := im.M.At(i, j)
	if err != nil || !base.ContainsNth(n) {
		return 0, 0, false
	}
	bi, bj := base.Subscripts(n)

	return bi, bj, true
}

// Pipeline composes strategies right-to-left, like function composition:
// Pipeline{A, B} applies B to the base first, then A to the result, so it
// views the same matrix as New(New(m, B), A). An empty Pipeline is the
// identity.
type Pipeline []Strategy

func (p Pipeline) Shape(base mat.Shape) mat.Shape {
	for k := len(p) - 1; k >= 0; k-- {
		base = p[k].Shape(base)
	}

	return base
}

func (p Pipeline) Map(base mat.Shape, i, j int) (int, int, bool) {
	// shapes[k] is the base shape strategy k operates on.
	shapes := make([]mat.Shape, len(p))
	for k := len(p) - 1; k >= 0; k-- {
		shapes[k] = base
		base = p[k].Shape(base)
	}
	ok := true
	for k := 0; k < len(p); k++ {
		if i, j, ok = p[k].Map(shapes[k], i, j); !ok {
			return 0, 0, false
		}
	}

	return i, j, true
}
