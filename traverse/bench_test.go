package traverse

import (
	"testing"

	"github.com/katalvlaran/matview/mat"
)

func benchMatrix(b *testing.B, rows, cols int) *mat.Dense[int] {
	b.Helper()
	d, err := mat.NewDense[int](rows, cols)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for n := 0; n < rows*cols; n++ {
		if err := mat.SetNth[int](d, n, n); err != nil {
			b.Fatalf("SetNth: %v", err)
		}
	}
	return d
}

func BenchmarkAllDrain(b *testing.B) {
	m := benchMatrix(b, 100, 100)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		it := All[int](m)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkAllSeq(b *testing.B) {
	m := benchMatrix(b, 100, 100)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for range All[int](m).Seq() {
		}
	}
}

func BenchmarkDiagsDecompose(b *testing.B) {
	m := benchMatrix(b, 100, 100)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = Diags[int](m)
	}
}

func BenchmarkEnumerate(b *testing.B) {
	m := benchMatrix(b, 100, 100)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		it := Enumerate[int](m)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
