// Package search locates a target inside a sorted slice of minor indices.
//
// Every strategy answers the same question: the lower bound of target
// (first position whose value is not less than target) and whether the value
// stored there equals target. The strategies differ only in cost:
//
//	Binary         O(log n) worst case; the default.
//	Interpolation  probes where a uniform distribution would put target;
//	               sub-logarithmic on uniform data, O(n) on clustered data.
//	Joint          interpolation probes while they keep shrinking the range,
//	               binary search once they stall or the range gets small.
//
// All strategies return identical Results apart from Probes, which counts the
// loop iterations spent and is reported to metrics by package indexer.
//
// Inputs must be strictly increasing, which is exactly what a compressed
// sparse span guarantees.
package search
