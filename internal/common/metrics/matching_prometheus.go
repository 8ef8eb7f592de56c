package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MatchingPrometheusMetrics struct {
	autoMatchDurationHist *prometheus.HistogramVec
	matchesAcceptedCount  *prometheus.CounterVec
}

func newMatchingPrometheusMetrics(reg prometheus.Registerer) *MatchingPrometheusMetrics {
	autoMatchDurationHist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auto_match_run_duration_seconds",
			Help:    "Duration of one automatic matching run in seconds.",
			Buckets: []float64{0, 0.010, 0.100, 0.200, 0.500, 1, 2, 5, 10, 30, 60},
		},
		[]string{"success"},
	)

	matchesAcceptedCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auto_match_accepted_total",
			Help: "Pairings accepted by automatic matching runs.",
		},
		[]string{"connection_type"},
	)

	reg.MustRegister(autoMatchDurationHist, matchesAcceptedCount)

	return &MatchingPrometheusMetrics{autoMatchDurationHist, matchesAcceptedCount}
}

func (m *MatchingPrometheusMetrics) GenerateMetrics(startTime time.Time, connectionTypes []string, processErr error) {
	duration := time.Since(startTime).Seconds()

	m.autoMatchDurationHist.WithLabelValues(strconv.FormatBool(processErr == nil)).Observe(duration)
	for _, ct := range connectionTypes {
		m.matchesAcceptedCount.WithLabelValues(ct).Inc()
	}
}
