// Package metric provides Prometheus metrics for unityvault.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "unityvault"

// Registry holds all application metrics.
//
// A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	TokensGenerated prometheus.Counter
	TokensDiscarded prometheus.Counter
	EntropyFailures prometheus.Counter
	Commits         *prometheus.CounterVec
}

// NewRegistry creates a registry with all session metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		TokensGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tokens_generated_total",
			Help:      "Total tokens armed",
		}),
		TokensDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tokens_discarded_total",
			Help:      "Total armed tokens discarded without commit",
		}),
		EntropyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "entropy_failures_total",
			Help:      "Total token generations aborted by an unavailable entropy source",
		}),
		Commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "commits_total",
			Help:      "Total commit attempts by outcome",
		}, []string{"outcome"}),
	}

	r.reg.MustRegister(
		r.TokensGenerated,
		r.TokensDiscarded,
		r.EntropyFailures,
		r.Commits,
	)

	return r
}

// IncGenerated records an armed token.
func (r *Registry) IncGenerated() {
	if r == nil {
		return
	}
	r.TokensGenerated.Inc()
}

// IncDiscarded records a discarded token.
func (r *Registry) IncDiscarded() {
	if r == nil {
		return
	}
	r.TokensDiscarded.Inc()
}

// IncEntropyFailure records a generation aborted for lack of entropy.
func (r *Registry) IncEntropyFailure() {
	if r == nil {
		return
	}
	r.EntropyFailures.Inc()
}

// IncCommit records a commit attempt with the given outcome label.
func (r *Registry) IncCommit(outcome string) {
	if r == nil {
		return
	}
	r.Commits.WithLabelValues(outcome).Inc()
}

// Register adds extra collectors to the registry.
func (r *Registry) Register(cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := r.reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Gatherer exposes the underlying registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
