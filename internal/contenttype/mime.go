package contenttype

import "strings"

// MimeType is a parsed Content-Type header value, stripped of its
// parameters (charset, boundary, ...). CRS only ever gates a body
// decoder on the type/subtype pair.
type MimeType struct {
	Type    string
	Subtype string
}

// Essence returns the "type/subtype" form, the only part CRS compares.
func (m MimeType) Essence() string {
	return m.Type + "/" + m.Subtype
}

// ParseMimeType parses a Content-Type header value into its essence,
// discarding parameters (";" separated, e.g. "; boundary=...",
// "; charset=utf-8").
func ParseMimeType(header string) (MimeType, bool) {
	header = strings.TrimSpace(header)
	if idx := strings.IndexByte(header, ';'); idx >= 0 {
		header = header[:idx]
	}
	header = strings.TrimSpace(header)

	idx := strings.IndexByte(header, '/')
	if idx < 0 {
		return MimeType{}, false
	}
	typ := strings.ToLower(strings.TrimSpace(header[:idx]))
	subtype := strings.ToLower(strings.TrimSpace(header[idx+1:]))
	if typ == "" || subtype == "" {
		return MimeType{}, false
	}
	return MimeType{Type: typ, Subtype: subtype}, true
}

// Common media types the extraction engine gates body decoding on.
const (
	ApplicationJSON              = "application/json"
	ApplicationWWWFormURLEncoded = "application/x-www-form-urlencoded"
	TextXML                      = "text/xml"
	ApplicationXML               = "application/xml"
)

// Is reports whether m's essence matches essence (e.g. "application/json").
func (m MimeType) Is(essence string) bool {
	return m.Essence() == essence
}
