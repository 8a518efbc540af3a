package cache

import (
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tobfell/respond/pkg/respond"
	"github.com/tobfell/respond/pkg/status"
)

const (
	// DefaultTTL is the fallback freshness window when a response
	// carries neither a max-age nor a parseable Expires header.
	DefaultTTL = 5 * time.Minute
)

// Entry is a built response at rest: the flat wire headers, status, and
// body as produced by the builder, plus the freshness bookkeeping the
// manager needs for TTL handling.
type Entry struct {
	// Body is the response body
	Body string `json:"body"`

	// StatusCode is the response status code
	StatusCode int `json:"status_code"`

	// Headers is the flat header map (one string per name)
	Headers map[string]string `json:"headers"`

	// Expires is when the entry becomes stale
	Expires time.Time `json:"expires"`

	// LastModified is taken from the Last-Modified header, if present
	LastModified time.Time `json:"last_modified"`

	// CachedAt is when the entry was created
	CachedAt time.Time `json:"cached_at"`
}

// FromResponse converts a built response into a cache entry. Freshness
// is derived from the response's own cache headers, in order of
// precedence: a no-store/no-cache Cache-Control makes the entry
// immediately stale, then the builder's lowercase max-age header, then
// the Expires header, then DefaultTTL.
func FromResponse(resp *respond.Response) (*Entry, error) {
	if resp == nil {
		return nil, fmt.Errorf("response cannot be nil")
	}

	now := time.Now()
	entry := &Entry{
		Body:       resp.Body,
		StatusCode: resp.Status.Int(),
		Headers:    maps.Clone(resp.Headers),
		CachedAt:   now,
	}
	if entry.Headers == nil {
		entry.Headers = map[string]string{}
	}

	entry.Expires = freshness(resp.Headers, now)

	if lastModStr := resp.Headers["Last-Modified"]; lastModStr != "" {
		if lastMod, err := http.ParseTime(lastModStr); err == nil {
			entry.LastModified = lastMod
		}
	}

	return entry, nil
}

// freshness computes the expiry time for a flat header map.
func freshness(headers map[string]string, now time.Time) time.Time {
	cc := strings.ToLower(headers["Cache-Control"])
	if strings.Contains(cc, "no-store") || strings.Contains(cc, "no-cache") {
		return now
	}

	if maxAgeStr := headers["max-age"]; maxAgeStr != "" {
		if seconds, err := strconv.ParseInt(maxAgeStr, 10, 64); err == nil && seconds > 0 {
			return now.Add(time.Duration(seconds) * time.Second)
		}
	}

	if expiresStr := headers["Expires"]; expiresStr != "" {
		if expires, err := http.ParseTime(expiresStr); err == nil {
			if expires.Before(now) {
				return now
			}
			return expires
		}
	}

	return now.Add(DefaultTTL)
}

// IsExpired returns true if the entry has gone stale.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// ToResponse reconstructs the built response from the entry.
func (e *Entry) ToResponse() *respond.Response {
	return &respond.Response{
		Body:    e.Body,
		Status:  status.Code(e.StatusCode),
		Headers: maps.Clone(e.Headers),
	}
}
