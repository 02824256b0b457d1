// SPDX-License-Identifier: MIT

package indexer

import (
	"fmt"

	"github.com/katalvlaran/csindex/schedule"
	"github.com/katalvlaran/csindex/sparse"
)

// noBad marks a worker that saw only valid coordinates.
const noBad = -1

// checkBatch rejects a nil matrix and unequal slice lengths.
func checkBatch(tag string, m *sparse.Matrix, lens ...int) error {
	if m == nil {
		return fmt.Errorf("%s: %w", tag, sparse.ErrNilMatrix)
	}
	for _, n := range lens[1:] {
		if n != lens[0] {
			return fmt.Errorf("%s: lengths %v: %w", tag, lens, sparse.ErrLengthMismatch)
		}
	}

	return nil
}

// firstBad turns per-worker first offenders into the error for the lowest
// query index. Worker ranges are ascending, so the first hit is the minimum.
func firstBad(m *sparse.Matrix, rows, cols, bad []int) error {
	for _, k := range bad {
		if k != noBad {
			return &sparse.OutOfBoundsError{Query: k, Row: rows[k], Col: cols[k], Rows: m.Rows(), Cols: m.Cols()}
		}
	}

	return nil
}

// mapBatch checks every coordinate against m and stores its (major, minor)
// mapping. On failure the lowest offending query is reported.
func mapBatch(m *sparse.Matrix, rows, cols, major, minor []int, threads int) error {
	parts := schedule.Partition(len(rows), threads)
	bad := make([]int, len(parts))
	err := schedule.Run(threads, parts, func(w int, r schedule.Range) error {
		bad[w] = noBad
		for k := r.Lo; k < r.Hi; k++ {
			if !m.InBounds(rows[k], cols[k]) {
				bad[w] = k
				return nil
			}
			major[k], minor[k] = m.MajorMinor(rows[k], cols[k])
		}
		return nil
	})
	if err != nil {
		return err
	}

	return firstBad(m, rows, cols, bad)
}
