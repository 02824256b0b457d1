// SPDX-License-Identifier: MIT

package aggregate

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

const (
	methodGroup = "Group"
	maxMajor    = math.MaxUint32
)

// Group folds a batch into unique (major, minor) keys.
//
// Stage 1 (Validate): equal lengths, majors representable in the bitmap.
// Stage 2 (Order): identity when WithSortedHint holds, else Order.
// Stage 3 (Fold): one pass over the ordered batch, reducing equal keys.
//
// Bounds against a matrix are the caller's concern; Group only needs
// majors in [0, math.MaxUint32].
func Group(major, minor []int, vals []float64, opts ...Option) (*Grouped, error) {
	n := len(major)
	if len(minor) != n || len(vals) != n {
		return nil, groupErrorf(ErrLengthMismatch, "major=%d minor=%d values=%d", n, len(minor), len(vals))
	}
	for k, mj := range major {
		if mj < 0 || uint64(mj) > maxMajor {
			return nil, groupErrorf(ErrMajorRange, "index %d: major %d", k, mj)
		}
	}
	cfg := gatherOptions(opts...)

	var perm []int
	if !cfg.sortedHint || !IsSorted(major, minor) {
		perm = Order(major, minor)
	}
	at := func(i int) int {
		if perm == nil {
			return i
		}

		return perm[i]
	}

	g := &Grouped{
		Minor:   make([]int, 0, n),
		Value:   make([]float64, 0, n),
		Touched: roaring.New(),
		Inputs:  n,
	}
	for i := 0; i < n; i++ {
		k := at(i)
		mj, mn, v := major[k], minor[k], vals[k]
		last := len(g.Runs) - 1
		switch {
		case last >= 0 && g.Runs[last].Major == mj && g.Minor[len(g.Minor)-1] == mn:
			if cfg.reduce == Sum {
				g.Value[len(g.Value)-1] += v
			} else {
				g.Value[len(g.Value)-1] = v
			}
			continue
		case last < 0 || g.Runs[last].Major != mj:
			g.Runs = append(g.Runs, Run{Major: mj, Lo: len(g.Minor)})
			g.Touched.Add(uint32(mj))
			last++
		}
		g.Minor = append(g.Minor, mn)
		g.Value = append(g.Value, v)
		g.Runs[last].Hi = len(g.Minor)
	}
	g.Touched.RunOptimize()

	return g, nil
}
