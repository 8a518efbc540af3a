package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a stored response by the route that produced it.
type Key struct {
	// Route is the request path (e.g., "/pages/welcome")
	Route string

	// Query holds the query parameters that vary the response
	Query url.Values
}

// String generates a deterministic cache key string.
// Format: resp:route:query1=val1:query2=val2
//
// Example:
//
//	resp:pages/welcome:lang=en
func (k Key) String() string {
	parts := []string{"resp"}

	route := strings.Trim(k.Route, "/")
	if route != "" {
		parts = append(parts, route)
	}

	// Query params sorted for determinism
	if len(k.Query) > 0 {
		queryKeys := make([]string, 0, len(k.Query))
		for key := range k.Query {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Query.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
