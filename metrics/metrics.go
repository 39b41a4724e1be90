// Package metrics exposes the Prometheus instruments for the lookup
// pipeline. Collectors are registered on the default registry so the
// /metrics endpoint only needs promhttp.Handler().
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupsTotal counts finished lookups by outcome: "success", "cache",
	// or the error classification type.
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainlens_lookups_total",
		Help: "Number of domain lookups by outcome.",
	}, []string{"outcome"})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "domainlens_cache_hits_total",
		Help: "Number of lookups served from cache.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "domainlens_cache_misses_total",
		Help: "Number of lookups that missed the cache.",
	})

	// LookupDuration tracks end-to-end resolution time for lookups that
	// reached the network.
	LookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "domainlens_lookup_duration_seconds",
		Help:    "End-to-end duration of uncached domain lookups.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)
