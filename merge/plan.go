// SPDX-License-Identifier: MIT

package merge

import (
	"fmt"

	"github.com/katalvlaran/csindex/search"
)

// BuildPlan merges the sorted, duplicate-free minors (with values) into the
// sorted span existing of the given major.
//
// Every minor is located in existing[pos:], where pos is the first entry not
// yet emitted, so a run of untouched entries costs one search instead of one
// comparison per entry.
// Complexity: O(k * cost(locate)) for k grouped minors.
func BuildPlan(major int, existing, minors []int, values []float64, mode Mode, locate search.Func) Plan {
	p := Plan{Major: major, Ops: make([]Op, 0, 2*len(minors)+1)}
	pos := 0
	for k, mn := range minors {
		r := locate(existing[pos:], mn)
		p.Probes += r.Probes
		if r.Pos > 0 {
			p.Ops = append(p.Ops, Op{Kind: Keep, Src: pos, Len: r.Pos})
			pos += r.Pos
		}
		switch {
		case !r.Found:
			p.Ops = append(p.Ops, Op{Kind: Insert, Minor: mn, Value: values[k]})
			p.Inserted++
		case mode == Overwrite:
			p.Ops = append(p.Ops, Op{Kind: Assign, Src: pos, Minor: mn, Value: values[k]})
			p.Updated++
			pos++
		default:
			p.Ops = append(p.Ops, Op{Kind: Update, Src: pos, Minor: mn, Value: values[k]})
			p.Updated++
			pos++
		}
	}
	if tail := len(existing) - pos; tail > 0 {
		p.Ops = append(p.Ops, Op{Kind: Keep, Src: pos, Len: tail})
	}
	p.Len = len(existing) + p.Inserted

	return p
}

// Apply writes the merged span into dstMinor/dstVals (both of length p.Len)
// reading kept entries from srcMinor/srcVals, the span the plan was built on.
func (p *Plan) Apply(dstMinor []int, dstVals []float64, srcMinor []int, srcVals []float64) error {
	if len(dstMinor) != p.Len || len(dstVals) != p.Len {
		return fmt.Errorf("Apply(major=%d): dst %d/%d, plan %d: %w",
			p.Major, len(dstMinor), len(dstVals), p.Len, ErrPlanLength)
	}
	if want := p.Len - p.Inserted; len(srcMinor) != want || len(srcVals) != want {
		return fmt.Errorf("Apply(major=%d): src %d/%d, plan %d: %w",
			p.Major, len(srcMinor), len(srcVals), want, ErrPlanLength)
	}

	w := 0
	for _, op := range p.Ops {
		switch op.Kind {
		case Keep:
			copy(dstMinor[w:w+op.Len], srcMinor[op.Src:op.Src+op.Len])
			copy(dstVals[w:w+op.Len], srcVals[op.Src:op.Src+op.Len])
			w += op.Len
		case Update:
			dstMinor[w], dstVals[w] = srcMinor[op.Src], srcVals[op.Src]+op.Value
			w++
		case Assign:
			dstMinor[w], dstVals[w] = srcMinor[op.Src], op.Value
			w++
		case Insert:
			dstMinor[w], dstVals[w] = op.Minor, op.Value
			w++
		}
	}

	return nil
}

// Span merges sorted, duplicate-free minors/values into one existing span
// with two cursors and returns fresh slices.
// Complexity: O(len(existing) + len(minors)).
func Span(existingMinor []int, existingVals []float64, minors []int, values []float64, mode Mode) ([]int, []float64) {
	n := len(existingMinor) + len(minors)
	outMinor := make([]int, 0, n)
	outVals := make([]float64, 0, n)
	i, j := 0, 0
	for i < len(existingMinor) && j < len(minors) {
		switch a, b := existingMinor[i], minors[j]; {
		case a < b:
			outMinor, outVals = append(outMinor, a), append(outVals, existingVals[i])
			i++
		case a > b:
			outMinor, outVals = append(outMinor, b), append(outVals, values[j])
			j++
		default:
			v := existingVals[i] + values[j]
			if mode == Overwrite {
				v = values[j]
			}
			outMinor, outVals = append(outMinor, a), append(outVals, v)
			i++
			j++
		}
	}
	outMinor = append(outMinor, existingMinor[i:]...)
	outVals = append(outVals, existingVals[i:]...)
	outMinor = append(outMinor, minors[j:]...)
	outVals = append(outVals, values[j:]...)

	return outMinor, outVals
}
