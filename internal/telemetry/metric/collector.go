// Package metric provides Prometheus metrics for unityvault.
package metric

import "github.com/prometheus/client_golang/prometheus"

// StateFunc reports live session state at scrape time.
type StateFunc func() (armed bool, vaultEntries int)

// Collector reports the armed flag and vault size on every scrape.
type Collector struct {
	state StateFunc

	armedDesc   *prometheus.Desc
	entriesDesc *prometheus.Desc
}

// NewCollector creates a collector reading state from fn.
func NewCollector(fn StateFunc) *Collector {
	return &Collector{
		state: fn,
		armedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "token_armed"),
			"1 when a token is armed, 0 otherwise",
			nil, nil,
		),
		entriesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "vault_entries"),
			"Number of entries secured in the vault",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.armedDesc
	ch <- c.entriesDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	armed, entries := c.state()

	armedVal := 0.0
	if armed {
		armedVal = 1
	}
	ch <- prometheus.MustNewConstMetric(c.armedDesc, prometheus.GaugeValue, armedVal)
	ch <- prometheus.MustNewConstMetric(c.entriesDesc, prometheus.GaugeValue, float64(entries))
}
