// Package status defines the HTTP status code enumeration used by built
// responses.
package status

import (
	"fmt"
	"net/http"
)

// Code is an HTTP response status code.
type Code int

// Common status codes. The list is not exhaustive; any int is a valid Code
// value and unknown codes simply have no reason phrase.
const (
	OK                  Code = 200
	Created             Code = 201
	Accepted            Code = 202
	NoContent           Code = 204
	MovedPermanently    Code = 301
	Found               Code = 302
	NotModified         Code = 304
	TemporaryRedirect   Code = 307
	PermanentRedirect   Code = 308
	BadRequest          Code = 400
	Unauthorized        Code = 401
	Forbidden           Code = 403
	NotFound            Code = 404
	MethodNotAllowed    Code = 405
	Conflict            Code = 409
	Gone                Code = 410
	UnsupportedMedia    Code = 415
	TooManyRequests     Code = 429
	InternalServerError Code = 500
	NotImplemented      Code = 501
	BadGateway          Code = 502
	ServiceUnavailable  Code = 503
	GatewayTimeout      Code = 504
)

// Int returns the code as a plain int.
func (c Code) Int() int {
	return int(c)
}

// Text returns the reason phrase for the code, or "" if unknown.
func (c Code) Text() string {
	return http.StatusText(int(c))
}

// String returns the status line form, e.g. "200 OK".
// Unknown codes render as the bare number.
func (c Code) String() string {
	text := c.Text()
	if text == "" {
		return fmt.Sprintf("%d", int(c))
	}
	return fmt.Sprintf("%d %s", int(c), text)
}

// Valid reports whether the code falls in a registered status class.
func (c Code) Valid() bool {
	return c >= 100 && c < 600
}

// Class returns the status class digit (1-5), or 0 for invalid codes.
func (c Code) Class() int {
	if !c.Valid() {
		return 0
	}
	return int(c) / 100
}
