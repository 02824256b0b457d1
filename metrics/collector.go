// SPDX-License-Identifier: MIT

package metrics

import (
	"sync/atomic"
	"time"
)

// Op names an engine operation in labels and log fields.
type Op string

const (
	OpGet Op = "get"
	OpAdd Op = "add"
	OpSet Op = "set"
)

// Mutation describes one completed Add or Set call.
type Mutation struct {
	Queries  int // batch length before grouping
	Groups   int // distinct keys after grouping
	Inserted int // new entries written
	Probes   int // search probes spent planning
}

// Collector receives one record per engine call.
type Collector interface {
	// RecordGet is called after each Get. probes is the sum over all queries.
	RecordGet(queries, probes int, duration time.Duration, err error)

	// RecordMutation is called after each Add (OpAdd) or Set (OpSet).
	// Only m.Queries is meaningful when err is non-nil.
	RecordMutation(op Op, m Mutation, duration time.Duration, err error)
}

// NoopCollector discards every record.
type NoopCollector struct{}

func (NoopCollector) RecordGet(int, int, time.Duration, error)          {}
func (NoopCollector) RecordMutation(Op, Mutation, time.Duration, error) {}

// BasicCollector accumulates totals in atomics.
type BasicCollector struct {
	GetCalls   atomic.Int64
	GetErrors  atomic.Int64
	GetQueries atomic.Int64
	GetProbes  atomic.Int64
	GetNanos   atomic.Int64

	MutationCalls    atomic.Int64
	MutationErrors   atomic.Int64
	MutationQueries  atomic.Int64
	MutationGroups   atomic.Int64
	MutationInserted atomic.Int64
	MutationProbes   atomic.Int64
	MutationNanos    atomic.Int64
}

// RecordGet implements Collector.
func (b *BasicCollector) RecordGet(queries, probes int, duration time.Duration, err error) {
	b.GetCalls.Add(1)
	b.GetNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GetErrors.Add(1)
		return
	}
	b.GetQueries.Add(int64(queries))
	b.GetProbes.Add(int64(probes))
}

// RecordMutation implements Collector. Add and Set share the counters.
func (b *BasicCollector) RecordMutation(_ Op, m Mutation, duration time.Duration, err error) {
	b.MutationCalls.Add(1)
	b.MutationNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MutationErrors.Add(1)
		return
	}
	b.MutationQueries.Add(int64(m.Queries))
	b.MutationGroups.Add(int64(m.Groups))
	b.MutationInserted.Add(int64(m.Inserted))
	b.MutationProbes.Add(int64(m.Probes))
}

// Stats is a point-in-time copy of a BasicCollector.
type Stats struct {
	GetCalls, GetErrors, GetQueries, GetProbes       int64
	MutationCalls, MutationErrors, MutationQueries   int64
	MutationGroups, MutationInserted, MutationProbes int64
	AvgGetProbes                                     float64 // per query
}

// Stats returns a snapshot of the current totals.
func (b *BasicCollector) Stats() Stats {
	s := Stats{
		GetCalls:         b.GetCalls.Load(),
		GetErrors:        b.GetErrors.Load(),
		GetQueries:       b.GetQueries.Load(),
		GetProbes:        b.GetProbes.Load(),
		MutationCalls:    b.MutationCalls.Load(),
		MutationErrors:   b.MutationErrors.Load(),
		MutationQueries:  b.MutationQueries.Load(),
		MutationGroups:   b.MutationGroups.Load(),
		MutationInserted: b.MutationInserted.Load(),
		MutationProbes:   b.MutationProbes.Load(),
	}
	if s.GetQueries > 0 {
		s.AvgGetProbes = float64(s.GetProbes) / float64(s.GetQueries)
	}

	return s
}

// Reset zeroes every counter.
func (b *BasicCollector) Reset() {
	for _, c := range []*atomic.Int64{
		&b.GetCalls, &b.GetErrors, &b.GetQueries, &b.GetProbes, &b.GetNanos,
		&b.MutationCalls, &b.MutationErrors, &b.MutationQueries, &b.MutationGroups,
		&b.MutationInserted, &b.MutationProbes, &b.MutationNanos,
	} {
		c.Store(0)
	}
}
