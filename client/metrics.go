package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	asyncEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawplanet_client",
			Name:      "async_writes_enqueued_total",
			Help:      "Fire-and-forget writes accepted into the shard executor.",
		},
		[]string{"shard"},
	)

	asyncFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawplanet_client",
			Name:      "async_write_failures_total",
			Help:      "Fire-and-forget writes whose async job returned error or panic.",
		},
		[]string{"shard"},
	)
)
