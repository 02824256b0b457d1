// SPDX-License-Identifier: MIT

package indexer

import (
	"fmt"
	"time"

	"github.com/katalvlaran/csindex/schedule"
	"github.com/katalvlaran/csindex/search"
	"github.com/katalvlaran/csindex/sparse"
)

const (
	methodGet     = "Get"
	methodGetInto = "GetInto"
)

// Get returns the values stored at (rows[k], cols[k]) for every k, with 0
// for absent cells. Duplicate coordinates are looked up independently.
// Complexity: O(q * cost(search)) split over the pool.
func Get(m *sparse.Matrix, rows, cols []int, opts ...Option) ([]float64, error) {
	dst := make([]float64, len(rows))
	if err := getInto(methodGet, dst, m, rows, cols, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return dst, nil
}

// GetInto is Get writing into dst, which must have len(rows) elements.
// On error dst contents are unspecified.
func GetInto(dst []float64, m *sparse.Matrix, rows, cols []int, opts ...Option) error {
	return getInto(methodGetInto, dst, m, rows, cols, gatherOptions(opts...))
}

func getInto(tag string, dst []float64, m *sparse.Matrix, rows, cols []int, cfg Options) error {
	start := time.Now()
	probes, err := get(tag, dst, m, rows, cols, cfg)
	d := time.Since(start)
	cfg.metrics.RecordGet(len(rows), probes, d, err)
	cfg.logger.LogGet(len(rows), cfg.threads, cfg.strategy, probes, d, err)

	return err
}

// get fans the batch out over contiguous query ranges. Each worker writes
// only its own dst slots and its own probe/offender cell.
func get(tag string, dst []float64, m *sparse.Matrix, rows, cols []int, cfg Options) (int, error) {
	if err := checkBatch(tag, m, len(rows), len(cols), len(dst)); err != nil {
		return 0, err
	}
	locate, err := search.Resolve(cfg.strategy)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}

	parts := schedule.Partition(len(rows), cfg.threads)
	probes := make([]int, len(parts))
	bad := make([]int, len(parts))
	err = schedule.Run(cfg.threads, parts, func(w int, r schedule.Range) error {
		bad[w] = noBad
		for k := r.Lo; k < r.Hi; k++ {
			if !m.InBounds(rows[k], cols[k]) {
				bad[w] = k
				return nil
			}
			major, minor := m.MajorMinor(rows[k], cols[k])
			idx, vals := m.Span(major)
			res := locate(idx, minor)
			probes[w] += res.Probes
			if res.Found {
				dst[k] = vals[res.Pos]
			} else {
				dst[k] = 0
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}
	if err = firstBad(m, rows, cols, bad); err != nil {
		return 0, err
	}

	total := 0
	for _, p := range probes {
		total += p
	}

	return total, nil
}
