// SPDX-License-Identifier: MIT

package aggregate

// DefaultReduce folds duplicates by summation.
const DefaultReduce = Sum

// Option customizes Group.
type Option func(*Options)

// Options holds the resolved Group configuration.
type Options struct {
	reduce     Reduce
	sortedHint bool
}

// WithReduce selects the duplicate policy. Panics on an unknown Reduce.
func WithReduce(r Reduce) Option {
	if r != Sum && r != Last {
		panic("aggregate: WithReduce: unknown reduce " + r.String())
	}

	return func(o *Options) { o.reduce = r }
}

// WithSortedHint declares the batch already sorted by (major, minor).
// The claim is verified in O(n); a false hint costs the check and the
// batch is sorted anyway.
func WithSortedHint() Option {
	return func(o *Options) { o.sortedHint = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{reduce: DefaultReduce}
	for _, set := range user {
		set(&o)
	}

	return o
}
