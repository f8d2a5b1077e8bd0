// Package orchestrate ties the rule loader, FTW test runner, variable
// extractor, and operator registry together: it is the engine's single
// entry point for "load these rules, run these tests, tell me what
// happened."
package orchestrate

import (
	"encoding/base64"
	"strings"

	"github.com/shieldcli/crscore/internal/ftw"
	"github.com/shieldcli/crscore/internal/httpmsg"
)

// buildRequest turns one FTW stage input into the httpmsg.Request the
// extraction engine reads from. encoded_request/raw_request, when set,
// override every other field per FTW's documented precedence.
func buildRequest(in *ftw.Input) (*httpmsg.Request, error) {
	if in.EncodedRequest != nil {
		raw, err := base64.StdEncoding.DecodeString(*in.EncodedRequest)
		if err != nil {
			return nil, err
		}
		return parseRawRequest(string(raw)), nil
	}
	if in.RawRequest != nil {
		return parseRawRequest(*in.RawRequest), nil
	}

	var body []byte
	if in.Data.Text != nil {
		body = []byte(*in.Data.Text)
	}

	headers := make([]httpmsg.Header, 0, len(in.Headers))
	for name, value := range in.Headers {
		headers = append(headers, httpmsg.Header{Name: name, Value: value})
	}

	path, query, _ := strings.Cut(in.URI, "?")

	return &httpmsg.Request{
		Method:   in.Method,
		Protocol: in.Version,
		Path:     path,
		RawQuery: query,
		Full:     fullURI(headers, in.URI),
		Headers:  headers,
		Body:     body,
	}, nil
}

// fullURI assembles REQUEST_URI_RAW's documented value: scheme + authority
// (the Host header) + the request-target as it appeared on the wire, or
// just the request-target when no Host header is present.
func fullURI(headers []httpmsg.Header, requestTarget string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, "Host") && h.Value != "" {
			return "http://" + h.Value + requestTarget
		}
	}
	return requestTarget
}

// parseRawRequest builds a Request from a literal HTTP/1.x request, used
// for raw_request/encoded_request stage inputs that hand-craft bytes a
// conformant client would never produce (the point of the test).
func parseRawRequest(raw string) *httpmsg.Request {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	req := &httpmsg.Request{}
	if len(lines) == 0 {
		return req
	}

	requestLine := strings.Fields(lines[0])
	var requestTarget string
	if len(requestLine) >= 1 {
		req.Method = requestLine[0]
	}
	if len(requestLine) >= 2 {
		requestTarget = requestLine[1]
		path, query, _ := strings.Cut(requestTarget, "?")
		req.Path = path
		req.RawQuery = query
	}
	if len(requestLine) >= 3 {
		req.Protocol = requestLine[2]
	}

	i := 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			i++
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		req.Headers = append(req.Headers, httpmsg.Header{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}

	req.Full = fullURI(req.Headers, requestTarget)

	if i < len(lines) {
		req.Body = []byte(strings.Join(lines[i:], "\n"))
	}

	return req
}
