// SPDX-License-Identifier: MIT

// Package schedule splits batch work into contiguous ranges and runs them on
// a bounded pool of goroutines.
//
// A pool lives for exactly one call: Run starts at most `threads` workers
// through errgroup, waits for all of them and returns the first error. There
// is no cancellation; every range runs to completion. With one thread (or a
// single range) the work runs inline on the calling goroutine, so T == 1 has
// no scheduling cost at all.
//
// Partition cuts [0, n) into equal shares (get path). PartitionWeighted cuts a
// list of weighted items into shares of similar total weight (add path, where
// an item is one touched major and its weight the number of grouped entries).
// Both return at most `parts` non-empty ranges; fewer when there is less work
// than workers.
package schedule
