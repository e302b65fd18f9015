package market

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_cache_requests_total",
			Help: "Cache lookups by operation and result (hit, miss, bypass)",
		},
		[]string{"operation", "result"},
	)

	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_conversions_total",
			Help: "Conversions received from the conversion events topic",
		},
		[]string{"coin", "target"},
	)
)
