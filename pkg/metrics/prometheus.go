package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	cacheRequests    *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	refreshDuration  *prometheus.HistogramVec
}

// New creates a Prometheus metrics recorder registered on reg.
// Pass prometheus.DefaultRegisterer to expose it on the scrape endpoint.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		cacheRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sade_cache_requests_total",
				Help: "Snapshot lookups by result",
			},
			[]string{"result"},
		),
		upstreamRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sade_upstream_requests_total",
				Help: "Banxico series requests by series and outcome",
			},
			[]string{"series", "status"},
		),
		refreshDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sade_refresh_duration_seconds",
				Help:    "Duration of a full snapshot refresh",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}
}

// RecordCache records a snapshot hit or miss.
func (r *Recorder) RecordCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheRequests.WithLabelValues(result).Inc()
}

// RecordUpstream records one series request.
func (r *Recorder) RecordUpstream(series string, err error) {
	r.upstreamRequests.WithLabelValues(series, status(err)).Inc()
}

// RecordRefresh records refresh latency in seconds.
func (r *Recorder) RecordRefresh(seconds float64, err error) {
	r.refreshDuration.WithLabelValues(status(err)).Observe(seconds)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
