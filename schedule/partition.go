// SPDX-License-Identifier: MIT

package schedule

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// Partition cuts [0, n) into min(parts, n) contiguous ranges whose lengths
// differ by at most one. n <= 0 or parts <= 0 yields nil.
// Complexity: O(parts).
func Partition(n, parts int) []Range {
	if n <= 0 || parts <= 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	out := make([]Range, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for p := range out {
		hi := lo + size
		if p < extra {
			hi++
		}
		out[p] = Range{Lo: lo, Hi: hi}
		lo = hi
	}

	return out
}

// PartitionWeighted cuts the items [0, len(weights)) into at most parts
// contiguous non-empty ranges of similar total weight. A range closes once
// its running total reaches the next proportional share, or when the items
// left are just enough to give every remaining range one. Weights must be
// non-negative.
// Complexity: O(len(weights)).
func PartitionWeighted(weights []int, parts int) []Range {
	n := len(weights)
	if n == 0 || parts <= 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	total := 0
	for _, w := range weights {
		total += w
	}

	out := make([]Range, 0, parts)
	lo, acc := 0, 0
	for i, w := range weights {
		acc += w
		cutsLeft := parts - len(out) - 1
		if cutsLeft == 0 || i == n-1 {
			continue
		}
		if acc*parts >= total*(len(out)+1) || n-1-i == cutsLeft {
			out = append(out, Range{Lo: lo, Hi: i + 1})
			lo = i + 1
		}
	}

	return append(out, Range{Lo: lo, Hi: n})
}
