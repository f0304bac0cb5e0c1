package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts provisioning requests and their latency. Outcome is
// "success" or "error"; provider is the requested tag.
type Metrics struct {
	ProvisionRequests *prometheus.CounterVec
	ProvisionDuration prometheus.Histogram
	HTTPRequests      *prometheus.CounterVec
}

// NewMetrics registers the service collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProvisionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stratus_provision_requests_total",
			Help: "Provisioning requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProvisionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stratus_provision_duration_seconds",
			Help:    "Time spent building a provisioning request.",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stratus_http_requests_total",
			Help: "HTTP requests by method and path pattern.",
		}, []string{"method", "path"}),
	}
}

func (m *Metrics) observeProvision(provider string, err error, seconds float64) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.ProvisionRequests.WithLabelValues(provider, outcome).Inc()
	m.ProvisionDuration.Observe(seconds)
}
