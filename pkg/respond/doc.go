// Package respond provides a fluent builder for HTTP responses.
//
// A Builder accumulates headers (multiple ordered values per name),
// a status code, and a body, and materializes immutable Response values
// with wire-ready single-string headers:
//
//	resp := respond.New().
//		WithType("application/json").
//		WithStatus(status.OK).
//		WithCache("+1 day").
//		WithBody(`{"ok":true}`).
//		Build()
//
//	// Hand off to a transport
//	resp.Write(w)
//
// Header names are stored exactly as given; the builder performs no case
// normalization and no validation. WithHeader replaces, WithAddedHeader
// appends:
//
//	b := respond.New()
//	b.WithAddedHeader("Vary", "Accept")
//	b.WithAddedHeader("Vary", "Accept-Encoding")
//	b.HeaderLine("Vary") // "Accept, Accept-Encoding"
//
// WithCache and WithDisabledCache stamp the standard freshness headers
// (Date, Last-Modified, Expires, max-age resp. Cache-Control); the
// pkg/cache manager understands both when deriving storage TTLs.
package respond
