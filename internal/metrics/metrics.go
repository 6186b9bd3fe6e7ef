// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_cache_hits_total",
			Help: "Resolved content served straight from the in-memory cache.",
		})

	ContentCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_cache_misses_total",
			Help: "Content resolutions that had to fetch customization rows.",
		})

	ContentResolveErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_resolve_errors_total",
			Help: "Content resolutions that fell back to defaults on a store error.",
		})

	GeoLookupErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "geo_lookup_errors_total",
			Help: "IP geolocation lookups that failed or returned no country.",
		})

	// RedirectDecisions is labelled by the terminal branch of the decision
	// tree: disabled, no_country, country_rule, home_country, international.
	RedirectDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geo_redirect_decisions_total",
			Help: "Root-path redirect decisions by terminal branch.",
		},
		[]string{"branch"},
	)
)

func init() {
	prometheus.MustRegister(
		ContentCacheHits,
		ContentCacheMisses,
		ContentResolveErrors,
		GeoLookupErrors,
		RedirectDecisions,
	)
}
