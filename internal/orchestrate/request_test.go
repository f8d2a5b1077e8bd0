package orchestrate

import (
	"encoding/base64"
	"testing"

	"github.com/shieldcli/crscore/internal/ftw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestFromPlainFields(t *testing.T) {
	text := "id=1"
	in := &ftw.Input{
		Method:  "POST",
		Version: "HTTP/1.1",
		URI:     "/login?redirect=/home",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Data:    ftw.RawData{Text: &text},
	}

	req, err := buildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/login", req.Path)
	assert.Equal(t, "redirect=/home", req.RawQuery)
	assert.Equal(t, "/login?redirect=/home", req.Full)
	assert.Equal(t, []byte("id=1"), req.Body)

	v, ok := req.HeaderValue("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "application/x-www-form-urlencoded", v)
}

func TestBuildRequestNoQueryString(t *testing.T) {
	in := &ftw.Input{Method: "GET", URI: "/", Version: "HTTP/1.1"}
	req, err := buildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, "/", req.Path)
	assert.Equal(t, "", req.RawQuery)
}

func TestBuildRequestRawRequestOverridesFields(t *testing.T) {
	raw := "GET /admin?x=1 HTTP/1.1\r\nHost: example.com\r\n\r\n"
	in := &ftw.Input{Method: "POST", URI: "/ignored", RawRequest: &raw}

	req, err := buildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/admin", req.Path)
	assert.Equal(t, "x=1", req.RawQuery)
	v, ok := req.HeaderValue("Host")
	require.True(t, ok)
	assert.Equal(t, "example.com", v)
}

func TestBuildRequestEncodedRequestIsBase64Decoded(t *testing.T) {
	raw := "GET /x HTTP/1.1\r\nHost: h\r\n\r\nbody"
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))
	in := &ftw.Input{EncodedRequest: &encoded}

	req, err := buildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, []byte("body"), req.Body)
}

func TestBuildRequestEncodedRequestInvalidBase64Errors(t *testing.T) {
	bad := "not-valid-base64!!!"
	in := &ftw.Input{EncodedRequest: &bad}
	_, err := buildRequest(in)
	assert.Error(t, err)
}

func TestParseRawRequestParsesHeadersAndBody(t *testing.T) {
	raw := "POST /submit HTTP/1.1\r\nContent-Type: text/plain\r\nX-Foo: bar\r\n\r\nline1\nline2"
	req := parseRawRequest(raw)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/submit", req.Path)
	assert.Equal(t, "HTTP/1.1", req.Protocol)

	v, ok := req.HeaderValue("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/plain", v)
	v, ok = req.HeaderValue("X-Foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)

	assert.Equal(t, []byte("line1\nline2"), req.Body)
}

func TestParseRawRequestNoBody(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nHost: h\r\n\r\n"
	req := parseRawRequest(raw)
	assert.Empty(t, req.Body)
}

func TestParseRawRequestEmptyString(t *testing.T) {
	req := parseRawRequest("")
	assert.Equal(t, "", req.Method)
}
