package respond

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// responsesBuiltTotal counts Build calls by status class.
	responsesBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "respond_responses_built_total",
			Help: "Total number of responses built by status class",
		},
		[]string{"class"}, // "2xx", "4xx", ...
	)

	// cacheHeadersTotal counts cache header stamping by mode.
	cacheHeadersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "respond_cache_headers_total",
			Help: "Total number of cache header sets applied to builders",
		},
		[]string{"mode"}, // "cache", "no-cache"
	)
)
