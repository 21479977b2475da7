package mat

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense(t *testing.T) {
	d, err := NewDense[int](2, 3)
	require.NoError(t, err, "non-negative dimensions must construct")
	assert.Equal(t, 2, d.Rows(), "rows preserved")
	assert.Equal(t, 3, d.Cols(), "cols preserved")

	v, err := d.At(1, 2)
	require.NoError(t, err, "in-bounds read")
	assert.Zero(t, v, "fresh matrix is zero-valued")

	_, err = NewDense[int](-1, 3)
	assert.ErrorIs(t, err, ErrBadShape, "negative rows must be rejected")

	empty, err := NewDense[int](0, 4)
	require.NoError(t, err, "zero rows is a valid (empty) matrix")
	assert.True(t, IsEmpty[int](empty), "0x4 is empty")
}

func TestFromSlice(t *testing.T) {
	backing := []int{1, 2, 3, 4, 5, 6}
	d, err := FromSlice(backing, 3)
	require.NoError(t, err, "6 elements fit a width of 3")

	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v, "row-major layout: (1,0) is the fourth element")

	// FromSlice aliases: writes through the matrix show in the slice.
	require.NoError(t, d.Set(0, 0, 42), "in-bounds write")
	assert.Equal(t, 42, backing[0], "Dense shares the caller's backing slice")

	_, err = FromSlice([]int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ErrBadShape, "3 elements do not tile a width of 2")
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err, "rectangular rows must construct")
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, ShapeOf[int](d), "shape follows the row set")

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRagged, "uneven row lengths must be rejected")
}

func TestFromSeq(t *testing.T) {
	d, err := FromSeq(slices.Values([]string{"a", "b", "c", "d"}), 2)
	require.NoError(t, err, "4 elements fit a width of 2")
	assert.Equal(t, 2, d.Rows(), "two full rows collected")

	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "d", v, "sequence order fills row-major")

	_, err = FromSeq(slices.Values([]int{1, 2, 3}), 2)
	assert.ErrorIs(t, err, ErrBadShape, "partial trailing row must be rejected")
}

func TestDense_AtRefAndBounds(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	p, err := d.AtRef(0, 1)
	require.NoError(t, err, "in-bounds ref")
	*p = 99
	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, v, "writes through AtRef stick")

	_, err = d.At(0, 2)
	assert.ErrorIs(t, err, ErrOutOfRange, "column past the end must error")
	_, err = d.AtRef(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange, "negative row must error")
}

func TestDense_SwapDimsAndClone(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	c := d.Clone()
	d.SwapDims()
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, ShapeOf[int](d), "SwapDims flips the shape")
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, ShapeOf[int](c), "clone keeps the old shape")

	// SwapDims relabels only: linear order is untouched.
	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, v, "(1,1) of the relabelled 3x2 is the fourth element")

	require.NoError(t, c.Set(0, 0, -1), "write to clone")
	v, err = d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "clone does not share storage")
}

func TestDense_String(t *testing.T) {
	d, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", d.String(), "one bracketed line per row")
}

func TestSlice2D(t *testing.T) {
	var s Slice2D[int] = [][]int{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, 2, s.Rows(), "outer length is the row count")
	assert.Equal(t, 3, s.Cols(), "first row length is the column count")

	v, err := s.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v, "nested indexing")

	p, err := s.AtRef(0, 0)
	require.NoError(t, err)
	*p = 10
	assert.Equal(t, 10, s[0][0], "AtRef writes into the nested slice")

	_, err = s.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange, "row past the end must error")

	var nilRows Slice2D[int]
	assert.Equal(t, 0, nilRows.Rows(), "nil slice is an empty matrix")
	assert.Equal(t, 0, nilRows.Cols(), "nil slice has no columns")
}
