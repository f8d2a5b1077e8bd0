// Package extract implements the variable extraction engine: turning a
// crs.Input (what a SecRule asked for) plus an httpmsg.Request (the
// message under inspection) into the concrete Values an operator
// evaluates against.
package extract

import "fmt"

// SourceType is the fine-grained provenance tag every extracted Value
// carries — finer-grained than crs.InputType, since one InputType (e.g.
// ARGS) can draw from several wire locations (query string, POST body,
// JSON body) that a rule author or analyst needs to tell apart in a
// match report.
type SourceType int

const (
	SourceBody SourceType = iota
	SourceCookie
	SourceCookieName
	SourceHeader
	SourceHeaderName
	SourceJSONArg
	SourceJSONArgName
	SourceMethod
	SourcePostArg
	SourcePostArgName
	SourceProtocol
	SourceQueryArg
	SourceQueryArgName
	SourceURIFull
	SourceURIPath
	SourceURIPathAndQuery
	SourceURIQuery
	SourceXMLProp
	SourceXMLPropName
	SourceXMLText
)

var sourceNames = [...]string{
	SourceBody:            "Body",
	SourceCookie:          "Cookie",
	SourceCookieName:      "CookieName",
	SourceHeader:          "Header",
	SourceHeaderName:      "HeaderName",
	SourceJSONArg:         "JsonArg",
	SourceJSONArgName:     "JsonArgName",
	SourceMethod:          "Method",
	SourcePostArg:         "PostArg",
	SourcePostArgName:     "PostArgName",
	SourceProtocol:        "Protocol",
	SourceQueryArg:        "QueryArg",
	SourceQueryArgName:    "QueryArgName",
	SourceURIFull:         "UriFull",
	SourceURIPath:         "UriPath",
	SourceURIPathAndQuery: "UriPathAndQuery",
	SourceURIQuery:        "UriQuery",
	SourceXMLProp:         "XmlProp",
	SourceXMLPropName:     "XmlPropName",
	SourceXMLText:         "XmlText",
}

func (s SourceType) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "Unknown"
}

// SourceTypeVariants returns every SourceType, in declaration order.
func SourceTypeVariants() []SourceType {
	out := make([]SourceType, len(sourceNames))
	for i := range sourceNames {
		out[i] = SourceType(i)
	}
	return out
}

// Value is one extracted datum: a byte view tagged with the SourceType
// it came from, and — for collection members like headers, cookies, and
// form fields — the member's name.
type Value struct {
	source SourceType
	name   []byte // nil for an anonymous (unnamed) value
	value  []byte
}

// NewValue builds an anonymous Value (no member name), e.g. REQUEST_METHOD.
func NewValue(source SourceType, value []byte) Value {
	return Value{source: source, value: value}
}

// NewNamedValue builds a Value drawn from a named collection member, e.g.
// one REQUEST_HEADERS entry.
func NewNamedValue(source SourceType, name, value []byte) Value {
	return Value{source: source, name: name, value: value}
}

func newStr(source SourceType, value string) Value {
	return NewValue(source, []byte(value))
}

func newNamedStr(source SourceType, name, value string) Value {
	return NewNamedValue(source, []byte(name), []byte(value))
}

// Source returns the provenance tag of v.
func (v Value) Source() SourceType { return v.source }

// Data returns the value bytes.
func (v Value) Data() []byte { return v.value }

// Name returns the member name and true, or (nil, false) for an
// anonymous value.
func (v Value) Name() ([]byte, bool) {
	if v.name == nil {
		return nil, false
	}
	return v.name, true
}

// AsName re-tags v's member name as a new anonymous Value under source —
// the move InputType variants like ARGS_NAMES make over their
// non-...Names counterpart.
func (v Value) AsName(source SourceType) (Value, bool) {
	if v.name == nil {
		return Value{}, false
	}
	return NewValue(source, v.name), true
}

func (v Value) String() string {
	if v.name != nil {
		return fmt.Sprintf("%s(%q, %q)", v.source, v.name, v.value)
	}
	return fmt.Sprintf("%s(%q)", v.source, v.value)
}
