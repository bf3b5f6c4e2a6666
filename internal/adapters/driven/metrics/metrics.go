// Package metrics instruments the word oracle and the solver with
// Prometheus collectors.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
)

// Ensure decorators implement the interfaces.
var (
	_ driven.WordOracle = (*Oracle)(nil)
	_ driving.Solver    = (*Solver)(nil)
)

// Metrics owns a registry and the collectors recorded on it.
type Metrics struct {
	registry *prometheus.Registry

	oracleRequests *prometheus.CounterVec
	oracleLatency  *prometheus.HistogramVec
	searches       *prometheus.CounterVec
	attempts       prometheus.Histogram
}

// New creates the collectors on a fresh registry. Go runtime and process
// collectors are registered alongside them.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		oracleRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keyword_oracle_requests_total",
				Help: "Dictionary lookups by verdict.",
			},
			[]string{"verdict"},
		),
		oracleLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "keyword_oracle_request_duration_seconds",
				Help:    "Duration of dictionary lookups, including client-side spacing.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"verdict"},
		),
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keyword_searches_total",
				Help: "Completed searches by outcome.",
			},
			[]string{"outcome"},
		),
		attempts: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "keyword_search_attempts",
				Help:    "Oracle calls issued per search.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Oracle wraps next so every lookup is counted and timed.
func (m *Metrics) Oracle(next driven.WordOracle) *Oracle {
	return &Oracle{next: next, metrics: m}
}

// Solver wraps next so every search outcome is counted.
func (m *Metrics) Solver(next driving.Solver) *Solver {
	return &Solver{next: next, metrics: m}
}

// Oracle is an instrumented driven.WordOracle.
type Oracle struct {
	next    driven.WordOracle
	metrics *Metrics
}

// Validate delegates to the wrapped oracle and records the verdict.
func (o *Oracle) Validate(ctx context.Context, candidate string) domain.Verdict {
	start := time.Now()
	verdict := o.next.Validate(ctx, candidate)

	label := verdict.Kind.String()
	o.metrics.oracleRequests.WithLabelValues(label).Inc()
	o.metrics.oracleLatency.WithLabelValues(label).Observe(time.Since(start).Seconds())
	return verdict
}

// Solver is an instrumented driving.Solver.
type Solver struct {
	next    driving.Solver
	metrics *Metrics
}

// Solve delegates to the wrapped solver and records the outcome.
func (s *Solver) Solve(ctx context.Context, sets domain.LetterSets, sink driven.StatusSink) domain.Outcome {
	outcome := s.next.Solve(ctx, sets, sink)

	s.metrics.searches.WithLabelValues(outcome.Kind.String()).Inc()
	s.metrics.attempts.Observe(float64(outcome.Attempts))
	return outcome
}
