package httpmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaderValueIsCaseInsensitive(t *testing.T) {
	r := &Request{Headers: []Header{{Name: "Content-Type", Value: "text/plain"}}}
	v, ok := r.HeaderValue("content-type")
	require.True(t, ok)
	assert.Equal(t, "text/plain", v)
}

func TestRequestHeaderValuesPreservesDuplicates(t *testing.T) {
	r := &Request{Headers: []Header{
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Set-Cookie", Value: "b=2"},
	}}
	assert.Equal(t, []string{"a=1", "b=2"}, r.HeaderValues("Set-Cookie"))
}

func TestRequestCookies(t *testing.T) {
	r := &Request{Headers: []Header{{Name: "Cookie", Value: "session=abc"}}}
	pairs, err := r.Cookies()
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "session", pairs[0].Name)
}

func TestRequestQueryArgsNoQueryString(t *testing.T) {
	r := &Request{}
	fields, err, has := r.QueryArgs()
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, fields)
}

func TestRequestQueryArgs(t *testing.T) {
	r := &Request{RawQuery: "id=1&name=bob"}
	fields, err, has := r.QueryArgs()
	require.NoError(t, err)
	assert.True(t, has)
	require.Len(t, fields, 2)
}

func TestRequestMimeTypeIs(t *testing.T) {
	r := &Request{Headers: []Header{{Name: "Content-Type", Value: "application/json"}}}
	assert.True(t, r.MimeTypeIs("application/json"))
	assert.False(t, r.MimeTypeIs("text/xml"))
}

func TestRequestPathAndQuery(t *testing.T) {
	r := &Request{Path: "/search", RawQuery: "q=x"}
	assert.Equal(t, "/search?q=x", r.PathAndQuery())

	r2 := &Request{Path: "/search"}
	assert.Equal(t, "/search", r2.PathAndQuery())
}
