// Package metrics provides the central Prometheus metrics reference for
// the respond module. All metrics are defined in their respective
// packages (respond, cache) via promauto to maintain modularity and
// avoid circular dependencies.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the module.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Builder Metrics (pkg/respond):
//   - respond_responses_built_total{class} (Counter): Build calls by status class ("2xx", "4xx", ...)
//   - respond_cache_headers_total{mode} (Counter): Cache header stamping by mode ("cache", "no-cache")
//
// Cache Metrics (pkg/cache):
//   - respond_cache_hits_total{layer="redis"} (Counter): Cache hits by layer
//   - respond_cache_misses_total (Counter): Cache misses
//   - respond_cache_size_bytes{layer="redis"} (Gauge): Current cache size in bytes
//   - respond_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(respond_cache_hits_total[5m])) /
//   (sum(rate(respond_cache_hits_total[5m])) + sum(rate(respond_cache_misses_total[5m])))
//
//   # Error Response Share
//   sum(rate(respond_responses_built_total{class=~"4xx|5xx"}[5m])) /
//   sum(rate(respond_responses_built_total[5m]))
//
//   # No-Cache Share
//   rate(respond_cache_headers_total{mode="no-cache"}[5m]) /
//   rate(respond_cache_headers_total[5m])
