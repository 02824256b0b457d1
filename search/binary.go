// SPDX-License-Identifier: MIT

package search

// BinarySearch returns the lower bound of target in a.
// Complexity: O(log n).
func BinarySearch(a []int, target int) Result {
	return lowerBound(a, 0, len(a), target, 0)
}

// lowerBound halves [lo, hi) until it closes on the first a[i] >= target.
// probes carries the count accumulated by a caller that narrowed the range.
func lowerBound(a []int, lo, hi, target, probes int) Result {
	for lo < hi {
		probes++
		mid := int(uint(lo+hi) >> 1) // no overflow
		if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return Result{Pos: lo, Found: lo < len(a) && a[lo] == target, Probes: probes}
}
