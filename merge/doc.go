// SPDX-License-Identifier: MIT

// Package merge folds grouped updates into a compressed matrix.
//
// Work happens in two phases.
//
//  1. Plan. For every touched major, BuildPlan walks the grouped minors in
//     order. Each one is located in the unvisited suffix of the existing span
//     with a search.Func, and the skipped prefix becomes a single Keep op.
//     Equal minors become Update (add) or Assign (set) ops. Absent minors
//     become Insert ops. Plans only read the matrix.
//  2. Rebuild. Span lengths give the new offsets by prefix sum. Then every
//     major is written into fresh arrays: touched majors apply their plan,
//     and stretches of untouched majors are copied in one block.
//
// Both phases fan out over package schedule. Workers own disjoint majors, so
// no locking is needed. The source matrix is never modified and the result
// is a new *sparse.Matrix.
//
// Span is the classic two-pointer merge of one span. It is kept as a
// reference and for callers that merge a single span.
package merge
