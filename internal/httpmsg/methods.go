package httpmsg

import "github.com/shieldcli/crscore/internal/contenttype"

// Cookies decodes every cookie-pair from the request's Cookie header(s).
// More than one Cookie header is an error per RFC 6265.
func (r *Request) Cookies() ([]contenttype.CookiePair, error) {
	return contenttype.Cookies(r.HeaderValues("Cookie"))
}

// QueryArgs decodes the request URI's query string as
// application/x-www-form-urlencoded fields. Returns (nil, nil, false)
// when the request has no query string at all.
func (r *Request) QueryArgs() ([]contenttype.FormField, error, bool) {
	if r.RawQuery == "" {
		return nil, nil, false
	}
	fields, err := contenttype.ParseWWWFormURLEncoded([]byte(r.RawQuery))
	return fields, err, true
}

// MimeType parses the request's Content-Type header, if present.
func (r *Request) MimeType() (contenttype.MimeType, bool) {
	v, ok := r.HeaderValue("Content-Type")
	if !ok {
		return contenttype.MimeType{}, false
	}
	return contenttype.ParseMimeType(v)
}

// MimeTypeIs reports whether the request's Content-Type essence matches
// essence (e.g. "application/json"). A request with no Content-Type
// header, or one that fails to parse, never matches.
func (r *Request) MimeTypeIs(essence string) bool {
	m, ok := r.MimeType()
	return ok && m.Is(essence)
}
