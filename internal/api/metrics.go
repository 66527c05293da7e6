package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	comparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_comparisons_total",
			Help: "Completed method comparisons by overall winner.",
		},
		[]string{"winner"},
	)

	comparisonDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_comparison_duration_seconds",
			Help:    "Wall time of comparison requests, scoring through persistence.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	comparisonErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_comparison_errors_total",
			Help: "Comparison requests rejected or failed, by kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(comparisonsTotal, comparisonDuration, comparisonErrors)
}
