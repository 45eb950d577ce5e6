package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits counts cache hits by backend.
	Hits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"backend"},
	)

	// Misses counts cache misses by backend.
	Misses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"backend"},
	)

	// Invalidations counts entries removed by tag invalidation.
	Invalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_cache_invalidated_entries_total",
			Help: "Total number of cache entries removed by tag invalidation",
		},
		[]string{"backend"},
	)

	// Errors counts backend operation failures.
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_cache_errors_total",
			Help: "Total number of cache backend errors",
		},
		[]string{"backend", "operation"},
	)
)
