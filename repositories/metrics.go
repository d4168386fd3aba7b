package repositories

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seedBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promisewatch",
			Name:      "promise_batches_total",
			Help:      "Promise seed and clear batches by result.",
		},
		[]string{"operation", "result"},
	)

	reportsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promisewatch",
			Name:      "reports_submitted_total",
			Help:      "Citizen report submissions by result.",
		},
		[]string{"result"},
	)
)
