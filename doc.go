// Package csindex is a batched point-access engine for compressed sparse
// matrices (CSR/CSC): look up, accumulate into, or assign millions of
// (row, col) coordinates at once, with a choice of search strategy and a
// bounded goroutine pool.
//
// What is in the box?
//
//   - sparse: the compressed matrix store (three arrays), strict validation,
//     COO triplets, gonum dense interop, CSR ↔ CSC conversion
//   - search: lower-bound search by binary, interpolation or joint
//     (interpolation with a binary fallback), with probe counts
//   - aggregate: groups an update batch by (major, minor), folding duplicates
//   - schedule: contiguous work partitions over an errgroup-bounded pool
//   - merge: per-major merge plans and the whole-matrix rebuild
//   - indexer: Get / GetInto / Add / Set, the atomic Engine, logging
//   - metrics: Collector interface, in-memory and Prometheus collectors
//   - builder: seeded random matrices, query and value batches
//
// Guarantees:
//
//   - Get output order equals input order for any thread count; absent
//     cells read as 0.
//   - Add and Set never modify their input matrix. Any out-of-bounds
//     coordinate fails the whole batch before anything is built.
//   - Every strategy and every pool size produce bit-identical results.
//
// Quick look (CSR, 2×3):
//
//	[[1.5, 0, 2],      values      = [1.5, 2, 4]
//	 [0,   4, 0]]      minorIndex  = [0, 2, 1]
//	                   majorOffset = [0, 2, 3]
//
//	got, _ := indexer.Get(m, []int{0, 1}, []int{2, 0})   // [2 0]
//	m2, _ := indexer.Add(m, []int{1}, []int{0}, []float64{7})
//
// See examples/ for a runnable walkthrough.
package csindex
