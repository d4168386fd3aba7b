package economics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCache   = "cache"
	outcomeLive    = "live"
	outcomeStale   = "stale"
	outcomeDefault = "default"
)

var (
	fetchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promisewatch",
			Name:      "indicator_fetch_total",
			Help:      "Indicator fetches by the source that answered them.",
		},
		[]string{"indicator", "outcome"},
	)

	remoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "promisewatch",
			Name:      "indicator_remote_seconds",
			Help:      "Latency of remote indicator requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"indicator"},
	)
)
