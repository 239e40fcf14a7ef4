package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutritrack_client",
			Name:      "requests_total",
			Help:      "SDK calls by operation and outcome (status code, network, invalid, canceled).",
		},
		[]string{"op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nutritrack_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of SDK calls including validation and decoding.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)
