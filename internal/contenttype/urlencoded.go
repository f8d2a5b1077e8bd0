package contenttype

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidBodyUTF8 reports that an application/x-www-form-urlencoded
// body was not valid UTF-8.
var ErrInvalidBodyUTF8 = errors.New("application/x-www-form-urlencoded data contains invalid UTF-8")

// FormField is one decoded name/value pair from an
// application/x-www-form-urlencoded payload.
type FormField struct {
	Name  string
	Value string
}

// ParseWWWFormURLEncoded splits a raw x-www-form-urlencoded payload into
// its fields, per the WHATWG HTML5 "application/x-www-form-urlencoded
// parsing" algorithm. No percent-decoding is performed here — CRS treats
// the wire bytes as the value and leaves decoding to its own transform
// pipeline.
func ParseWWWFormURLEncoded(data []byte) ([]FormField, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidBodyUTF8
	}
	s := string(data)
	if s == "" {
		return nil, nil
	}

	var fields []FormField
	for _, piece := range strings.Split(s, "&") {
		if piece == "" {
			continue
		}
		if idx := strings.IndexByte(piece, '='); idx >= 0 {
			fields = append(fields, FormField{Name: piece[:idx], Value: piece[idx+1:]})
		} else {
			fields = append(fields, FormField{Name: piece, Value: ""})
		}
	}
	return fields, nil
}
