// Package sparse is the compressed matrix store of csindex.
//
// A Matrix keeps three parallel arrays in either row-major (CSR) or
// column-major (CSC) orientation:
//
//	values      []float64  one per stored entry
//	minorIndex  []int      minor coordinate of each entry, ascending per major slice
//	majorOffset []int      len == majorDim+1, start of every major slice
//
// The two orientations are symmetric under a major/minor relabeling:
// CSR groups entries by row (major=row, minor=col), CSC by column
// (major=col, minor=row). Every constructor validates the layout invariants
// unless explicitly told the arrays are trusted, so a *Matrix obtained from
// this package is always well-formed.
//
// Matrices are treated as immutable after construction: readers may share a
// *Matrix across goroutines without locks, and mutation (see package merge)
// always produces a fresh instance.
//
// Interop:
//
//	FromTriplets  COO triplets → Matrix (duplicates summed)
//	FromDense     gonum mat.Matrix → Matrix (non-zeros only)
//	ToDense       Matrix → *mat.Dense
//	ToOrientation CSR ↔ CSC
package sparse
