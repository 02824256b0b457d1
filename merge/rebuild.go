// SPDX-License-Identifier: MIT

package merge

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/csindex/aggregate"
	"github.com/katalvlaran/csindex/schedule"
	"github.com/katalvlaran/csindex/sparse"
)

const methodRebuild = "Rebuild"

// Rebuild returns a new matrix holding m with g folded in.
//
// Stage 1 (Validate): g must fit inside m.
// Stage 2 (Plan): one Plan per run of g, partitioned by run weight.
// Stage 3 (Offsets): prefix sum of the new span lengths.
// Stage 4 (Write): majors partitioned evenly; each worker finds its first
// plan by bitmap rank and walks forward from there.
//
// m is only read. On error nothing is returned.
// Complexity: O(majorDim + nnz + k*cost(locate)) work, split over the pool.
func Rebuild(m *sparse.Matrix, g *aggregate.Grouped, opts ...Option) (*sparse.Matrix, Stats, error) {
	if m == nil {
		return nil, Stats{}, rebuildErrorf(sparse.ErrNilMatrix, "source")
	}
	if err := checkGroups(m, g); err != nil {
		return nil, Stats{}, err
	}
	cfg := gatherOptions(opts...)

	plans := make([]Plan, len(g.Runs))
	parts := schedule.PartitionWeighted(g.Weights(), cfg.threads)
	err := schedule.Run(cfg.threads, parts, func(_ int, r schedule.Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			run := g.Runs[i]
			existing, _ := m.Span(run.Major)
			minors, values := g.Entries(run)
			plans[i] = BuildPlan(run.Major, existing, minors, values, cfg.mode, cfg.locate)
		}
		return nil
	})
	if err != nil {
		return nil, Stats{}, rebuildErrorf(err, "plan")
	}

	st := Stats{Groups: g.Len(), Majors: len(plans)}
	majorDim := m.MajorDim()
	src := m.MajorOffset()
	offsets := make([]int, majorDim+1)
	next := 0
	for i := 0; i < majorDim; i++ {
		n := src[i+1] - src[i]
		if next < len(plans) && plans[next].Major == i {
			p := &plans[next]
			n = p.Len
			st.Inserted += p.Inserted
			st.Updated += p.Updated
			st.Probes += p.Probes
			next++
		}
		offsets[i+1] = offsets[i] + n
	}

	nnz := offsets[majorDim]
	minor := make([]int, nnz)
	values := make([]float64, nnz)
	srcMinor, srcVals := m.MinorIndex(), m.Values()
	err = schedule.ForEach(cfg.threads, majorDim, func(_ int, r schedule.Range) error {
		next := rankBefore(g.Touched, r.Lo)
		for i := r.Lo; i < r.Hi; {
			if next < len(plans) && plans[next].Major == i {
				p := &plans[next]
				lo, hi := src[i], src[i+1]
				if err := p.Apply(minor[offsets[i]:offsets[i+1]], values[offsets[i]:offsets[i+1]],
					srcMinor[lo:hi], srcVals[lo:hi]); err != nil {
					return err
				}
				next++
				i++
				continue
			}
			// Untouched stretch [i, end): one block copy.
			end := r.Hi
			if next < len(plans) && plans[next].Major < end {
				end = plans[next].Major
			}
			copy(minor[offsets[i]:offsets[end]], srcMinor[src[i]:src[end]])
			copy(values[offsets[i]:offsets[end]], srcVals[src[i]:src[end]])
			i = end
		}
		return nil
	})
	if err != nil {
		return nil, Stats{}, rebuildErrorf(err, "write")
	}

	rows, cols := m.Dims()
	out, err := sparse.New(m.Orientation(), rows, cols, values, minor, offsets,
		sparse.WithTrustedLayout(), sparse.WithNoValidateNaNInf())
	if err != nil {
		return nil, Stats{}, rebuildErrorf(err, "finalize")
	}
	if cfg.verify {
		if err = out.Validate(); err != nil {
			return nil, Stats{}, rebuildErrorf(err, "verify")
		}
	}

	return out, st, nil
}

// checkGroups rejects runs whose major or minors fall outside m.
func checkGroups(m *sparse.Matrix, g *aggregate.Grouped) error {
	if g == nil {
		return rebuildErrorf(ErrGroupRange, "nil group")
	}
	majorDim, minorDim := m.MajorDim(), m.MinorDim()
	for _, r := range g.Runs {
		if r.Major < 0 || r.Major >= majorDim {
			return rebuildErrorf(ErrGroupRange, "major %d not in [0,%d)", r.Major, majorDim)
		}
	}
	for k, mn := range g.Minor {
		if mn < 0 || mn >= minorDim {
			return rebuildErrorf(ErrGroupRange, "key %d: minor %d not in [0,%d)", k, mn, minorDim)
		}
	}

	return nil
}

// rankBefore counts touched majors strictly below major, which is the index
// of the first plan at or after major.
func rankBefore(touched *roaring.Bitmap, major int) int {
	switch {
	case major <= 0:
		return 0
	case uint64(major-1) >= math.MaxUint32:
		return int(touched.GetCardinality())
	default:
		return int(touched.Rank(uint32(major - 1)))
	}
}
