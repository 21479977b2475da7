// Package matview is a generic matrix-access layer: plug in any storage
// that can report its dimensions and fetch an element by (row, column),
// and derive a full suite of traversal, reshaping and transformation
// views without copying or reallocating that storage.
//
// 🚀 What is matview?
//
//	A small, pure-Go library built around one minimal capability contract:
//		• mat/      — Matrix/MutMatrix interfaces, Shape arithmetic,
//		              Dense[T] and [][]T adapters, structural predicates
//		• view/     — no-copy coordinate-remapping views: transpose,
//		              rotations, flips, shifts, submatrix, reshape, pipelines
//		• traverse/ — lazy double-ended exact-length iterators over rows,
//		              columns, diagonals and the whole matrix + dump helpers
//		• inplace/  — shape-preserving mutation: swaps, stable sort,
//		              in-place transposition, flips, rotations and shifts
//
// ✨ Why choose matview?
//
//   - Storage-agnostic – any type with Rows/Cols/At participates
//   - No hidden copies – views remap coordinates, they never materialize
//   - Deterministic – fixed traversal orders, exact iterator lengths
//   - Pure Go – no cgo, generics over any element type
//
// Quick ASCII example:
//
//	    base            view.New(base, view.Transpose{})
//	    [ 1 2 3 ]  ──►  [ 1 4 ]
//	    [ 4 5 6 ]       [ 2 5 ]
//	                    [ 3 6 ]
//
//	the transposed view reads straight through to the base storage.
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/matview
package matview
