// Package metric provides Prometheus metrics for unityvault.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: registry, session counters and HTTP handler
//   - collector.go: collector reporting live session state on scrape
//
// All collectors live on a private registry, so tests and multiple
// sessions never collide on the default Prometheus registry.
package metric
