// SPDX-License-Identifier: MIT

package aggregate

import (
	"cmp"
	"slices"
)

// Order returns the permutation that sorts the batch by (major, minor).
// Equal keys keep their input order. major and minor must have equal length.
// Complexity: O(n log n).
func Order(major, minor []int) []int {
	perm := make([]int, len(major))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		if c := cmp.Compare(major[a], major[b]); c != 0 {
			return c
		}

		return cmp.Compare(minor[a], minor[b])
	})

	return perm
}

// IsSorted reports whether the batch is non-decreasing by (major, minor).
// Complexity: O(n).
func IsSorted(major, minor []int) bool {
	for i := 1; i < len(major); i++ {
		if major[i] < major[i-1] || (major[i] == major[i-1] && minor[i] < minor[i-1]) {
			return false
		}
	}

	return true
}
