// SPDX-License-Identifier: MIT
// Test-only accessors for PrometheusCollector internals.

package metrics

import "github.com/prometheus/client_golang/prometheus"

// PromCounter returns the labelled child of the named counter family.
func PromCounter(p *PrometheusCollector, family string, op Op) prometheus.Counter {
	vecs := map[string]*prometheus.CounterVec{
		"calls":    p.calls,
		"errors":   p.errors,
		"queries":  p.queries,
		"probes":   p.probes,
		"groups":   p.groups,
		"inserted": p.inserted,
	}

	return vecs[family].WithLabelValues(string(op))
}
