// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Run calls fn once per range on at most threads goroutines and waits for
// all of them. worker is the position of r in ranges; callers use it to
// address per-worker scratch without locking.
//
// The returned error is the first non-nil error any fn returned. Inline
// execution (threads == 1 or one range) stops at that error; parallel
// execution lets the other ranges finish.
func Run(threads int, ranges []Range, fn func(worker int, r Range) error) error {
	if threads < 1 {
		return fmt.Errorf("Run(threads=%d): %w", threads, ErrThreads)
	}
	if threads == 1 || len(ranges) <= 1 {
		for w, r := range ranges {
			if err := fn(w, r); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(threads)
	for w, r := range ranges {
		g.Go(func() error { return fn(w, r) })
	}

	return g.Wait()
}

// ForEach runs fn over Partition(n, threads).
func ForEach(threads, n int, fn func(worker int, r Range) error) error {
	return Run(threads, Partition(n, threads), fn)
}
