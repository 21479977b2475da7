package traverse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matview/mat"
)

func fixture33(t *testing.T) *mat.Dense[int] {
	t.Helper()
	m, err := mat.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)
	return m
}

func drain[T any](it *Iter[T]) []T {
	out := make([]T, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func TestAll(t *testing.T) {
	it := All[int](fixture33(t))
	require.Equal(t, 9, it.Len(), "fresh cursor covers every element")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, drain(it), "row-major order")
	assert.Equal(t, 0, it.Len(), "drained cursor is empty")

	_, ok := it.Next()
	assert.False(t, ok, "exhausted cursor stays exhausted")
	_, ok = it.NextBack()
	assert.False(t, ok, "from either end")
}

func TestRowAndCol(t *testing.T) {
	m := fixture33(t)

	row, err := Row[int](m, 1)
	require.NoError(t, err, "row 1 exists")
	assert.Equal(t, []int{4, 5, 6}, drain(row), "middle row left to right")

	col, err := Col[int](m, 2)
	require.NoError(t, err, "column 2 exists")
	assert.Equal(t, []int{3, 6, 9}, drain(col), "last column top to bottom")

	_, err = Row[int](m, 3)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "missing row is rejected")
	_, err = Col[int](m, -1)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "negative column is rejected")
}

func TestDiag(t *testing.T) {
	m := fixture33(t)

	want := [][]int{{7}, {4, 8}, {1, 5, 9}, {2, 6}, {3}}
	for d, lane := range want {
		it, err := Diag[int](m, d)
		require.NoError(t, err, "diagonal %d exists", d)
		assert.Equal(t, len(lane), it.Len(), "diagonal %d length", d)
		assert.Equal(t, lane, drain(it), "diagonal %d walks up-right", d)
	}

	_, err := Diag[int](m, 5)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "only rows+cols-1 diagonals exist")

	main := MainDiag[int](m)
	assert.Equal(t, []int{1, 5, 9}, drain(main), "main diagonal passes through the origin")
}

func TestDiagRectangular(t *testing.T) {
	m, err := mat.FromRows([][]int{{1, 2, 3, 4}, {5, 6, 7, 8}})
	require.NoError(t, err)

	if diff := cmp.Diff([][]int{{5}, {1, 6}, {2, 7}, {3, 8}, {4}}, Diags[int](m)); diff != "" {
		t.Errorf("wide-matrix diagonals mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 6}, drain(MainDiag[int](m)), "main diagonal is bounded by the short side")
}

func TestDoubleEnded(t *testing.T) {
	it := All[int](fixture33(t))

	back, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 9, back, "back end starts at the last element")
	assert.Equal(t, 8, it.Len(), "consuming from the back shrinks the cursor")

	front, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, front, "front end is unaffected by back consumption")

	// Alternate ends until the cursor drains; every element must appear
	// exactly once across both ends.
	seen := map[int]bool{back: true, front: true}
	fromFront := true
	for it.Len() > 0 {
		var v int
		if fromFront {
			v, ok = it.Next()
		} else {
			v, ok = it.NextBack()
		}
		require.True(t, ok, "cursor with positive Len must yield")
		assert.False(t, seen[v], "element %d yielded twice", v)
		seen[v] = true
		fromFront = !fromFront
	}
	assert.Len(t, seen, 9, "both ends together cover the matrix exactly")
}

func TestSeq(t *testing.T) {
	it := All[int](fixture33(t))
	_, _ = it.Next() // consume one before bridging

	var got []int
	for v := range it.Seq() {
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, []int{2, 3, 4, 5}, got, "Seq resumes where the cursor stands and honors break")
}

func TestMutIter(t *testing.T) {
	m := fixture33(t)

	it, err := RowMut[int](m, 0)
	require.NoError(t, err)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, Rows[int](m)[0], "writes through the cursor stick")

	diag, err := DiagMut[int](m, 1)
	require.NoError(t, err)
	p, ok := diag.NextBack()
	require.True(t, ok)
	*p = 0
	assert.Equal(t, 0, mat.MustAt[int](m, 2, 1), "back of diagonal 1 is the bottom cell")
}

func TestEnumerate(t *testing.T) {
	m, err := mat.FromRows([][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)

	it := Enumerate[string](m)
	require.Equal(t, 4, it.Len())

	c, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, Cell[string]{Row: 0, Col: 0, Value: "a"}, c, "front starts at the origin")

	c, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, Cell[string]{Row: 1, Col: 1, Value: "d"}, c, "back starts at the last cell")

	var rest []Cell[string]
	for c := range it.Seq() {
		rest = append(rest, c)
	}
	if diff := cmp.Diff([]Cell[string]{
		{Row: 0, Col: 1, Value: "b"},
		{Row: 1, Col: 0, Value: "c"},
	}, rest); diff != "" {
		t.Errorf("remaining cells mismatch (-want +got):\n%s", diff)
	}
}

func TestDecompose(t *testing.T) {
	m := fixture33(t)

	if diff := cmp.Diff([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, Rows[int](m)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, Cols[int](m)); diff != "" {
		t.Errorf("cols mismatch (-want +got):\n%s", diff)
	}

	empty, err := mat.NewDense[int](0, 5)
	require.NoError(t, err)
	assert.Empty(t, Diags[int](empty), "empty matrix has no diagonals")
	assert.Equal(t, 0, All[int](empty).Len(), "empty matrix has an empty cursor")
}

func TestDump(t *testing.T) {
	m, err := mat.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, "Rows\n0: [1 2]\n1: [3 4]\n", SprintRows[int](m), "row dump layout")
	assert.Equal(t, "Cols\n0: [1 3]\n1: [2 4]\n", SprintCols[int](m), "column dump layout")
	assert.Equal(t, "Diags\n0: [3]\n1: [1 4]\n2: [2]\n", SprintDiags[int](m), "diagonal dump layout")
}
