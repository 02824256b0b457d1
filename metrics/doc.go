// SPDX-License-Identifier: MIT

// Package metrics records per-call counters of the indexing operations.
//
// The engine reports through the Collector interface once per Get, Add or
// Set call. Implementations must be safe for concurrent use.
//
//   - NoopCollector drops everything (library default).
//   - BasicCollector keeps atomic in-memory totals; handy in tests and for
//     debugging without a monitoring stack.
//   - PrometheusCollector exports counters and a latency histogram labelled
//     by operation.
package metrics
