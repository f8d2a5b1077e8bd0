// Package httpmsg holds the HTTP request representation that the
// variable extraction engine reads from. Request keeps the request line,
// URI parts, and headers as strings and the body as a byte slice. Values
// built from the string fields are copies; only a Value taken from Body
// shares memory with the Request.
package httpmsg

import "strings"

// Header is one HTTP header line, kept in arrival order. A wire message
// can repeat a header name (e.g. two Set-Cookie lines), so Request stores
// headers as a slice rather than a map.
type Header struct {
	Name  string
	Value string
}

// Request is the subset of an HTTP request the extraction engine needs:
// enough of the request line, headers, and body to drive every SourceType
// in the composition table, without depending on net/http's server-side
// Request (which owns a live connection this engine never needs).
type Request struct {
	Method   string
	Protocol string

	// URI components, kept separate because REQUEST_URI, REQUEST_URI_RAW,
	// and QUERY_STRING each read a different slice of the same request
	// target.
	Path     string
	RawQuery string
	Full     string // the request-target, prefixed with "http://" and the Host header value when one is present

	Headers []Header
	Body    []byte
}

// HeaderValues returns every value recorded for name, case-insensitively,
// in arrival order.
func (r *Request) HeaderValues(name string) []string {
	var out []string
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			out = append(out, h.Value)
		}
	}
	return out
}

// HeaderValue returns the first value recorded for name, case-insensitively.
func (r *Request) HeaderValue(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// PathAndQuery reconstructs REQUEST_URI: the path plus, if present, a "?"
// and the raw query string.
func (r *Request) PathAndQuery() string {
	if r.RawQuery == "" {
		return r.Path
	}
	return r.Path + "?" + r.RawQuery
}
