// SPDX-License-Identifier: MIT

package search

import "fmt"

// Joint switchover policy. The bound is a tunable, validated only by the
// strategy-equivalence tests; JointWith exposes it for experiments.
const (
	// DefaultJointMaxStalls is the number of consecutive non-converging
	// interpolation probes tolerated before switching to binary search.
	DefaultJointMaxStalls = 2

	// DefaultJointMinRange hands ranges of at most this many entries to binary search.
	DefaultJointMinRange = 8

	// DefaultJointShrinkDivisor defines convergence: a probe must cut at
	// least width/DefaultJointShrinkDivisor entries from the range.
	DefaultJointShrinkDivisor = 4
)

const (
	panicJointStalls = "search: JointWith: maxStalls must be >= 0"
	panicJointRange  = "search: JointWith: minRange must be >= 1"
)

// JointSearch is JointWith(DefaultJointMaxStalls, DefaultJointMinRange).
func JointSearch(a []int, target int) Result {
	return joint(a, target, DefaultJointMaxStalls, DefaultJointMinRange)
}

// JointWith returns a joint strategy with a custom switchover bound.
// Panics on nonsensical arguments (programmer error).
func JointWith(maxStalls, minRange int) Func {
	if maxStalls < 0 {
		panic(panicJointStalls)
	}
	if minRange < 1 {
		panic(fmt.Sprintf("%s (got %d)", panicJointRange, minRange))
	}

	return func(a []int, target int) Result {
		return joint(a, target, maxStalls, minRange)
	}
}

// joint runs interpolation probes while the range is large and the probes
// keep converging, then finishes with lowerBound on what is left.
// Complexity: O(log n) worst case up to the stall allowance.
func joint(a []int, target, maxStalls, minRange int) Result {
	lo, hi := 0, len(a)
	probes, stalls := 0, 0
	for hi-lo > minRange && stalls <= maxStalls {
		probes++
		if r, done := checkBounds(a, lo, hi, target, probes); done {
			return r
		}
		width := hi - lo
		pos := interpolate(a, lo, hi, target)
		switch v := a[pos]; {
		case v == target:
			return Result{Pos: pos, Found: true, Probes: probes}
		case v < target:
			lo = pos + 1
		default:
			hi = pos
		}
		if hi-lo > width-width/DefaultJointShrinkDivisor {
			stalls++
		} else {
			stalls = 0
		}
	}

	return lowerBound(a, lo, hi, target, probes)
}
