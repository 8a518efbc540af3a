package respond

import (
	"io"
	"net/http"

	"github.com/tobfell/respond/pkg/status"
)

// Response is the materialized form of a builder: one body string, one
// status code, and a flat header map with a single wire-ready string per
// header name. A Response is a plain value; it never mutates and holds
// no reference back to the builder that produced it.
type Response struct {
	Body    string            `json:"body"`
	Status  status.Code       `json:"status"`
	Headers map[string]string `json:"headers"`
}

// Write hands the response off to an HTTP transport. Headers are copied
// verbatim (names keep their exact case, so the lowercase max-age header
// survives), then the status line and body are written.
func (r *Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	for name, value := range r.Headers {
		h[name] = []string{value}
	}

	w.WriteHeader(r.Status.Int())

	_, err := io.WriteString(w, r.Body)
	return err
}
