package respond

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tobfell/respond/pkg/duration"
	"github.com/tobfell/respond/pkg/status"
)

const (
	// DefaultContentType is the Content-Type a fresh builder carries.
	DefaultContentType = "text/html"

	// DefaultCacheDuration is the cache window used when WithCache is
	// called with an empty duration string.
	DefaultCacheDuration = "+1 day"

	// expiredDate is the fixed past date written to Expires by
	// WithDisabledCache.
	expiredDate = "Mon, 26 Jul 1997 05:00:00 GMT"

	// noCacheDirectives is the Cache-Control value written by
	// WithDisabledCache.
	noCacheDirectives = "no-store, no-cache, must-revalidate, post-check=0, pre-check=0"
)

// Builder accumulates response headers, a status code, and a body, and
// materializes Response values on demand via Build.
//
// Header names are case-sensitive and stored exactly as given; no
// canonicalization is performed. Each name maps to an ordered list of
// values. A Builder is not safe for concurrent use.
type Builder struct {
	headers map[string][]string
	status  status.Code
	body    string
}

// New returns a builder with the default state:
// Content-Type: text/html, status 200 OK, empty body.
func New() *Builder {
	b := &Builder{
		headers: make(map[string][]string),
		status:  status.OK,
	}
	return b.WithType(DefaultContentType)
}

// Headers returns the live header map. Ownership is shared with the
// builder: mutations through the returned map are visible to subsequent
// builder operations. Callers needing isolation should Build first.
func (b *Builder) Headers() map[string][]string {
	return b.headers
}

// Header returns the ordered values set for name, or nil if absent.
func (b *Builder) Header(name string) []string {
	return b.headers[name]
}

// HeaderLine returns the values for name joined with ", ", the
// single-string form sent on the wire. Absent headers yield "".
func (b *Builder) HeaderLine(name string) string {
	return strings.Join(b.headers[name], ", ")
}

// HasHeader reports whether name has been set. The match is exact; no
// case folding is applied.
func (b *Builder) HasHeader(name string) bool {
	_, ok := b.headers[name]
	return ok
}

// WithHeader replaces any existing values for name with the single
// value given.
func (b *Builder) WithHeader(name, value string) *Builder {
	b.headers[name] = []string{value}
	return b
}

// WithAddedHeader appends value to the list for name, creating the
// entry if absent. Call order is preserved.
func (b *Builder) WithAddedHeader(name, value string) *Builder {
	b.headers[name] = append(b.headers[name], value)
	return b
}

// WithType sets the Content-Type header, replacing any prior values.
// An empty mime falls back to DefaultContentType.
func (b *Builder) WithType(mime string) *Builder {
	if mime == "" {
		mime = DefaultContentType
	}
	return b.WithHeader("Content-Type", mime)
}

// WithStatus sets the response status code.
func (b *Builder) WithStatus(code status.Code) *Builder {
	b.status = code
	return b
}

// WithBody replaces the response body.
func (b *Builder) WithBody(body string) *Builder {
	b.body = body
	return b
}

// WithCache marks the response cacheable for the given relative
// duration (see package duration for the grammar). It sets Date and
// Last-Modified to the current UTC time, Expires to now plus the
// duration, and a lowercase max-age header to the window in whole
// seconds, rounded.
//
// An empty or unparseable duration falls back to DefaultCacheDuration.
func (b *Builder) WithCache(dur string) *Builder {
	if dur == "" {
		dur = DefaultCacheDuration
	}

	millis, err := duration.Parse(dur)
	if err != nil {
		millis, _ = duration.Parse(DefaultCacheDuration)
	}

	now := time.Now().UTC()
	httpNow := now.Format(http.TimeFormat)
	expires := now.Add(time.Duration(millis) * time.Millisecond)
	maxAge := int64(math.Round(float64(millis) / 1000))

	b.WithHeader("Date", httpNow)
	b.WithHeader("Last-Modified", httpNow)
	b.WithHeader("Expires", expires.Format(http.TimeFormat))
	b.WithHeader("max-age", strconv.FormatInt(maxAge, 10))

	cacheHeadersTotal.WithLabelValues("cache").Inc()
	return b
}

// WithDisabledCache marks the response uncacheable: Expires is pinned
// to a fixed past date, Last-Modified to the current UTC time, and
// Cache-Control to the full set of no-cache directives.
func (b *Builder) WithDisabledCache() *Builder {
	b.WithHeader("Expires", expiredDate)
	b.WithHeader("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	b.WithHeader("Cache-Control", noCacheDirectives)

	cacheHeadersTotal.WithLabelValues("no-cache").Inc()
	return b
}

// Build snapshots the builder into a Response. Each header's value list
// is collapsed to its HeaderLine form, so the result carries exactly one
// string per header name. The builder stays mutable afterwards and Build
// may be called again; successive calls without intervening mutation
// produce equal responses.
func (b *Builder) Build() *Response {
	headers := make(map[string]string, len(b.headers))
	for name := range b.headers {
		headers[name] = b.HeaderLine(name)
	}

	responsesBuiltTotal.WithLabelValues(statusClass(b.status)).Inc()

	return &Response{
		Body:    b.body,
		Status:  b.status,
		Headers: headers,
	}
}

// statusClass renders a status code's class as a metric label ("2xx").
func statusClass(code status.Code) string {
	class := code.Class()
	if class == 0 {
		return "invalid"
	}
	return strconv.Itoa(class) + "xx"
}
