// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every exported metric name.
const DefaultNamespace = "csindex"

// PrometheusCollector exports engine records as Prometheus metrics. The only
// label is op (get, add, set), so cardinality stays fixed.
type PrometheusCollector struct {
	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	queries  *prometheus.CounterVec
	probes   *prometheus.CounterVec
	groups   *prometheus.CounterVec
	inserted *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusCollector creates the metrics and registers them with reg
// (prometheus.DefaultRegisterer when nil). An empty namespace means
// DefaultNamespace. Registration errors, such as a duplicate namespace on
// the same registry, are returned unchanged.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"op"})
	}
	p := &PrometheusCollector{
		calls:    counter("calls_total", "Engine calls by operation"),
		errors:   counter("errors_total", "Engine calls that returned an error"),
		queries:  counter("queries_total", "Coordinates processed"),
		probes:   counter("probes_total", "Search probes spent"),
		groups:   counter("groups_total", "Distinct keys after grouping a mutation batch"),
		inserted: counter("inserted_total", "Entries inserted by mutations"),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Engine call latency",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"op"}),
	}
	for _, c := range []prometheus.Collector{p.calls, p.errors, p.queries, p.probes, p.groups, p.inserted, p.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// RecordGet implements Collector.
func (p *PrometheusCollector) RecordGet(queries, probes int, duration time.Duration, err error) {
	if !p.observe(OpGet, duration, err) {
		return
	}
	p.queries.WithLabelValues(string(OpGet)).Add(float64(queries))
	p.probes.WithLabelValues(string(OpGet)).Add(float64(probes))
}

// RecordMutation implements Collector.
func (p *PrometheusCollector) RecordMutation(op Op, m Mutation, duration time.Duration, err error) {
	if !p.observe(op, duration, err) {
		return
	}
	l := string(op)
	p.queries.WithLabelValues(l).Add(float64(m.Queries))
	p.probes.WithLabelValues(l).Add(float64(m.Probes))
	p.groups.WithLabelValues(l).Add(float64(m.Groups))
	p.inserted.WithLabelValues(l).Add(float64(m.Inserted))
}

// observe records the call and reports whether it succeeded.
func (p *PrometheusCollector) observe(op Op, duration time.Duration, err error) bool {
	l := string(op)
	p.calls.WithLabelValues(l).Inc()
	p.duration.WithLabelValues(l).Observe(duration.Seconds())
	if err != nil {
		p.errors.WithLabelValues(l).Inc()
		return false
	}

	return true
}
