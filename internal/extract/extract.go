package extract

import (
	"strconv"
	"strings"

	"github.com/shieldcli/crscore/internal/contenttype"
	"github.com/shieldcli/crscore/internal/crs"
	"github.com/shieldcli/crscore/internal/httpmsg"
)

// ValuesFromSource extracts every Value of the given SourceType present
// on req. This is the per-SourceType leaf of extraction; Extract composes
// these according to an Input's InputType and applies its Selector.
func ValuesFromSource(req *httpmsg.Request, source SourceType) []Value {
	switch source {
	case SourceBody:
		return []Value{NewValue(SourceBody, req.Body)}

	case SourceMethod:
		return []Value{newStr(SourceMethod, req.Method)}

	case SourceProtocol:
		return []Value{newStr(SourceProtocol, req.Protocol)}

	case SourceURIPath:
		return []Value{newStr(SourceURIPath, req.Path)}

	case SourceURIQuery:
		if req.RawQuery == "" {
			return nil
		}
		return []Value{newStr(SourceURIQuery, req.RawQuery)}

	case SourceURIPathAndQuery:
		return []Value{newStr(SourceURIPathAndQuery, req.PathAndQuery())}

	case SourceURIFull:
		return []Value{newStr(SourceURIFull, req.Full)}

	case SourceHeader:
		out := make([]Value, 0, len(req.Headers))
		for _, h := range req.Headers {
			out = append(out, newNamedStr(SourceHeader, h.Name, h.Value))
		}
		return out

	case SourceHeaderName:
		out := make([]Value, 0, len(req.Headers))
		for _, h := range req.Headers {
			out = append(out, newStr(SourceHeaderName, h.Name))
		}
		return out

	case SourceCookie:
		pairs, err := req.Cookies()
		if err != nil {
			return nil
		}
		out := make([]Value, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, newNamedStr(SourceCookie, p.Name, p.Value))
		}
		return out

	case SourceCookieName:
		pairs, err := req.Cookies()
		if err != nil {
			return nil
		}
		out := make([]Value, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, newStr(SourceCookieName, p.Name))
		}
		return out

	case SourceQueryArg:
		fields, err, ok := req.QueryArgs()
		if err != nil || !ok {
			return nil
		}
		out := make([]Value, 0, len(fields))
		for _, f := range fields {
			out = append(out, newNamedStr(SourceQueryArg, f.Name, f.Value))
		}
		return out

	case SourceQueryArgName:
		fields, err, ok := req.QueryArgs()
		if err != nil || !ok {
			return nil
		}
		out := make([]Value, 0, len(fields))
		for _, f := range fields {
			out = append(out, newStr(SourceQueryArgName, f.Name))
		}
		return out

	case SourcePostArg:
		if !req.MimeTypeIs(contenttype.ApplicationWWWFormURLEncoded) {
			return nil
		}
		fields, err := contenttype.ParseWWWFormURLEncoded(req.Body)
		if err != nil {
			return nil
		}
		out := make([]Value, 0, len(fields))
		for _, f := range fields {
			out = append(out, newNamedStr(SourcePostArg, f.Name, f.Value))
		}
		return out

	case SourcePostArgName:
		if !req.MimeTypeIs(contenttype.ApplicationWWWFormURLEncoded) {
			return nil
		}
		fields, err := contenttype.ParseWWWFormURLEncoded(req.Body)
		if err != nil {
			return nil
		}
		out := make([]Value, 0, len(fields))
		for _, f := range fields {
			out = append(out, newStr(SourcePostArgName, f.Name))
		}
		return out

	case SourceJSONArg:
		if !req.MimeTypeIs(contenttype.ApplicationJSON) {
			return nil
		}
		args, _ := JSONArgs(req.Body)
		return args

	case SourceJSONArgName:
		if !req.MimeTypeIs(contenttype.ApplicationJSON) {
			return nil
		}
		_, names := JSONArgs(req.Body)
		return names

	case SourceXMLProp:
		if !isXML(req) {
			return nil
		}
		props, _, _ := XMLValues(req.Body)
		return props

	case SourceXMLPropName:
		if !isXML(req) {
			return nil
		}
		_, names, _ := XMLValues(req.Body)
		return names

	case SourceXMLText:
		if !isXML(req) {
			return nil
		}
		_, _, text := XMLValues(req.Body)
		return text

	default:
		return nil
	}
}

func isXML(req *httpmsg.Request) bool {
	return req.MimeTypeIs(contenttype.TextXML) || req.MimeTypeIs(contenttype.ApplicationXML)
}

// Extract resolves a crs.Input against req: gathers every Value its
// InputType's source set produces, then narrows it per the Input's
// Selector (a specific member, everything but a member, or a count).
func Extract(req *httpmsg.Request, in crs.Input) []Value {
	sources, ok := SourcesForInput(in.Type)
	if !ok {
		return nil
	}

	var all []Value
	for _, src := range sources {
		all = append(all, ValuesFromSource(req, src)...)
	}

	return applySelector(all, in.Selector)
}

func applySelector(values []Value, sel crs.Selector) []Value {
	switch sel.Kind {
	case crs.SelectorNone:
		return values

	case crs.SelectorInclude:
		var out []Value
		for _, v := range values {
			if name, ok := v.Name(); ok && strings.EqualFold(string(name), sel.Name) {
				out = append(out, v)
			}
		}
		return out

	case crs.SelectorExclude:
		var out []Value
		for _, v := range values {
			if name, ok := v.Name(); ok && strings.EqualFold(string(name), sel.Name) {
				continue
			}
			out = append(out, v)
		}
		return out

	case crs.SelectorCount:
		count := 0
		for _, v := range values {
			if name, ok := v.Name(); ok && strings.EqualFold(string(name), sel.Name) {
				count++
			}
		}
		return []Value{newStr(countSource(values), strconv.Itoa(count))}

	case crs.SelectorCountAll:
		return []Value{newStr(countSource(values), strconv.Itoa(len(values)))}

	default:
		return values
	}
}

// countSource returns the SourceType to tag a &COUNT result with: the
// source of the first value being counted, or SourceMethod when there
// are no values at all (the count is still meaningful — it's just 0).
func countSource(values []Value) SourceType {
	if len(values) == 0 {
		return SourceMethod
	}
	return values[0].Source()
}
