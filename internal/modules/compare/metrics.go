package compare

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vadi_model_calls_total",
			Help: "Model endpoint calls by outcome",
		},
		[]string{"model", "mode", "outcome"},
	)

	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vadi_model_call_duration_seconds",
			Help:    "Latency of model endpoint calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		},
		[]string{"model", "mode"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vadi_submissions_total",
			Help: "Submissions by result (committed, superseded, invalid)",
		},
		[]string{"result"},
	)
)
