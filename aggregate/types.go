// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Reduce selects how duplicate keys are folded.
type Reduce uint8

const (
	// Sum adds every value of a key (add path).
	Sum Reduce = iota
	// Last keeps the value that came last in input order (set path).
	Last
)

// String returns "sum" or "last".
func (r Reduce) String() string {
	switch r {
	case Sum:
		return "sum"
	case Last:
		return "last"
	default:
		return fmt.Sprintf("Reduce(%d)", uint8(r))
	}
}

// Run is the slice [Lo, Hi) of Grouped.Minor/Value belonging to one major.
type Run struct {
	Major  int
	Lo, Hi int
}

// Len is the number of distinct minors in the run.
func (r Run) Len() int { return r.Hi - r.Lo }

// Grouped is a batch folded to unique (major, minor) keys.
//
// Invariants:
//   - Runs are sorted by Major, strictly increasing.
//   - Within a run Minor is strictly increasing.
//   - Touched contains exactly the Major of every run.
type Grouped struct {
	Minor   []int
	Value   []float64
	Runs    []Run
	Touched *roaring.Bitmap

	// Inputs is the batch length before folding.
	Inputs int
}

// Len returns the number of distinct keys.
func (g *Grouped) Len() int { return len(g.Minor) }

// Lookup returns the run of major, if it was touched.
// The position of a run equals the rank of its major in Touched.
func (g *Grouped) Lookup(major int) (Run, bool) {
	if major < 0 || uint64(major) > maxMajor || !g.Touched.Contains(uint32(major)) {
		return Run{}, false
	}

	return g.Runs[g.Touched.Rank(uint32(major))-1], true
}

// Entries returns the minors and values of run r as shared sub-slices.
func (g *Grouped) Entries(r Run) ([]int, []float64) {
	return g.Minor[r.Lo:r.Hi:r.Hi], g.Value[r.Lo:r.Hi:r.Hi]
}

// Weights returns the run lengths in run order, for work partitioning.
func (g *Grouped) Weights() []int {
	w := make([]int, len(g.Runs))
	for i, r := range g.Runs {
		w[i] = r.Len()
	}

	return w
}
