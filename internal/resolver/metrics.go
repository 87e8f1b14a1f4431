package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	SourceLocal     = "local"
	SourcePrimary   = "icecat"
	SourceSecondary = "upcitemdb"
)

// Metrics counts resolutions per source so operators can watch how often the
// external services are actually consulted.
type Metrics struct {
	hits   *prometheus.CounterVec
	misses prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resolver_hits_total",
			Help: "EAN resolutions by answering source.",
		}, []string{"source"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resolver_misses_total",
			Help: "EAN resolutions where every source came up empty.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses)
	}
	return m
}

func (m *Metrics) Hit(source string) {
	if m == nil {
		return
	}
	m.hits.WithLabelValues(source).Inc()
}

func (m *Metrics) Miss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}
