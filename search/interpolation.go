// SPDX-License-Identifier: MIT

package search

import "math"

// InterpolationSearch returns the lower bound of target in a, probing where
// a uniform spread of values would place it.
//
// Invariant: a[lo-1] < target (when lo > 0) and a[hi] >= target (when
// hi < len(a)), so the answer always lies in [lo, hi].
//
// Complexity: O(log log n) expected on uniform data, O(n) worst case.
func InterpolationSearch(a []int, target int) Result {
	lo, hi := 0, len(a)
	probes := 0
	for lo < hi {
		probes++
		if r, done := checkBounds(a, lo, hi, target, probes); done {
			return r
		}
		pos := interpolate(a, lo, hi, target)
		switch v := a[pos]; {
		case v == target:
			return Result{Pos: pos, Found: true, Probes: probes}
		case v < target:
			lo = pos + 1
		default:
			hi = pos
		}
	}

	return Result{Pos: lo, Probes: probes}
}

// checkBounds settles the search when target sits at or outside the values
// bounding [lo, hi). A target equal to a boundary value is found there.
func checkBounds(a []int, lo, hi, target, probes int) (Result, bool) {
	lv, hv := a[lo], a[hi-1]
	switch {
	case target <= lv:
		return Result{Pos: lo, Found: target == lv, Probes: probes}, true
	case target > hv:
		return Result{Pos: hi, Probes: probes}, true
	case target == hv:
		return Result{Pos: hi - 1, Found: true, Probes: probes}, true
	}

	return Result{}, false
}

// interpolate estimates the position of target in [lo, hi) assuming
// a[lo] < target < a[hi-1]. The estimate is clamped to [lo+1, hi-1]
// because a[lo] is already known to be below target.
// Equal bound values fall back to the midpoint.
func interpolate(a []int, lo, hi, target int) int {
	lv, hv := a[lo], a[hi-1]
	var pos int
	switch span, dist := hi-1-lo, target-lv; {
	case hv == lv:
		pos = lo + (hi-lo)/2
	case dist <= math.MaxInt/span:
		pos = lo + dist*span/(hv-lv)
	default:
		// Product would overflow: trade exactness for range.
		pos = lo + int(float64(dist)/float64(hv-lv)*float64(span))
	}
	if pos <= lo {
		pos = lo + 1
	}
	if pos > hi-1 {
		pos = hi - 1
	}

	return pos
}
