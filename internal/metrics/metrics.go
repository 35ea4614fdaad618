package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dolinaroz/landing/internal/lead"
)

// Registry wraps a dedicated prometheus registry so tests and the server
// never share global collectors.
type Registry struct {
	reg *prometheus.Registry
}

// NewRegistry creates a registry with the Go runtime collector installed.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	return &Registry{reg: reg}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Lead records lead submission outcomes. It implements lead.Recorder.
type Lead struct {
	Submissions  *prometheus.CounterVec
	RelayLatency prometheus.Histogram
}

// NewLead registers the lead collectors on r.
func NewLead(r *Registry) *Lead {
	factory := promauto.With(r.reg)
	return &Lead{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lead_submissions_total",
			Help: "Lead form submissions by outcome",
		}, []string{"outcome"}),
		RelayLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lead_relay_duration_seconds",
			Help:    "Time spent waiting for the form relay",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveSubmission counts the outcome; relay latency is observed only for
// calls that reached the relay.
func (m *Lead) ObserveSubmission(outcome lead.Outcome, relayDuration time.Duration) {
	m.Submissions.WithLabelValues(string(outcome)).Inc()
	if outcome == lead.OutcomeSent || outcome == lead.OutcomeFailed {
		m.RelayLatency.Observe(relayDuration.Seconds())
	}
}
