// SPDX-License-Identifier: MIT

// Package aggregate groups a batch of (major, minor, value) updates by key
// before it reaches a compressed matrix.
//
// Group sorts the batch by (major, minor) with a stable comparison, folds
// every run of equal keys into a single value (Sum or Last), and records
// which majors were touched in a roaring bitmap. The result is the input of
// package merge: one sorted, duplicate-free list of minors per touched major.
//
// Zero-sum groups are kept. Adding +1 and -1 to an absent cell still
// produces an explicit zero entry, exactly as adding 0 would.
//
// Complexity:
//   - Group: O(n log n) time, O(n) space; O(n) when the sorted hint holds.
//   - Lookup: O(log t) for t touched majors (bitmap rank).
package aggregate
