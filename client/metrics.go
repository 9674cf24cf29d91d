package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablefront_client",
			Name:      "requests_total",
			Help:      "Requests issued by the executor, labelled by outcome status (0 = no response).",
		},
		[]string{"resource", "method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tablefront_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of completed requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)
