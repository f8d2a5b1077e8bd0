package ftw

import "strings"

// DoMagic applies FTW's automatic request normalization: sanitizing the
// URI's query string, and — unless StopMagic opts out — expanding
// escaped CRLFs in the body and defaulting Content-Type when a body is
// present but no content type was given.
func (in *Input) DoMagic() {
	in.sanitizeQueryString()

	if in.StopMagic {
		return
	}

	in.Data.replaceEscapedCRLF()

	if in.Data.Text != nil && *in.Data.Text != "" && !in.hasContentTypeHeader() {
		if in.Headers == nil {
			in.Headers = make(map[string]string)
		}
		in.Headers["Content-Type"] = "application/x-www-form-urlencoded"
	}
}

func (in *Input) hasContentTypeHeader() bool {
	for k := range in.Headers {
		if strings.EqualFold(k, "Content-Type") {
			return true
		}
	}
	return false
}

// sanitizeQueryString percent-encodes the handful of characters that
// would otherwise make the crafted URI ambiguous once it left the query
// string: a literal space, quote, angle bracket, or a second "?".
// Everything before the first "?" is left untouched, since test authors
// often put attack payloads directly in the path.
func (in *Input) sanitizeQueryString() {
	var b strings.Builder
	b.Grow(len(in.URI) * 3 / 2)
	pastQuery := false

	for i := 0; i < len(in.URI); i++ {
		c := in.URI[i]
		if !pastQuery {
			if c == '?' {
				pastQuery = true
			}
			b.WriteByte(c)
			continue
		}
		switch c {
		case ' ':
			b.WriteString("%20")
		case '"':
			b.WriteString("%22")
		case '<':
			b.WriteString("%3C")
		case '>':
			b.WriteString("%3E")
		case '?':
			b.WriteString("%3F")
		default:
			b.WriteByte(c)
		}
	}

	in.URI = b.String()
}
