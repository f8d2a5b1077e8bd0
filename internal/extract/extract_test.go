package extract

import (
	"testing"

	"github.com/shieldcli/crscore/internal/crs"
	"github.com/shieldcli/crscore/internal/httpmsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithQuery(rawQuery string) *httpmsg.Request {
	return &httpmsg.Request{Method: "GET", Path: "/", RawQuery: rawQuery}
}

func TestExtractArgsGetSelectsNamedQueryArg(t *testing.T) {
	req := requestWithQuery("id=1&name=bob")
	in := crs.Input{Type: crs.ArgsGet, Selector: crs.Selector{Kind: crs.SelectorInclude, Name: "name"}}
	values := Extract(req, in)
	require.Len(t, values, 1)
	assert.Equal(t, "bob", string(values[0].Data()))
}

func TestExtractArgsExcludesMember(t *testing.T) {
	req := requestWithQuery("id=1&password=secret")
	in := crs.Input{Type: crs.Args, Selector: crs.Selector{Kind: crs.SelectorExclude, Name: "password"}}
	values := Extract(req, in)
	for _, v := range values {
		name, _ := v.Name()
		assert.NotEqual(t, "password", string(name))
	}
}

func TestExtractCountAll(t *testing.T) {
	req := requestWithQuery("a=1&b=2&c=3")
	in := crs.Input{Type: crs.ArgsGet, Selector: crs.Selector{Kind: crs.SelectorCountAll}}
	values := Extract(req, in)
	require.Len(t, values, 1)
	assert.Equal(t, "3", string(values[0].Data()))
}

func TestExtractCountNamed(t *testing.T) {
	req := requestWithQuery("id=1&id=2&name=x")
	in := crs.Input{Type: crs.ArgsGet, Selector: crs.Selector{Kind: crs.SelectorCount, Name: "id"}}
	values := Extract(req, in)
	require.Len(t, values, 1)
	assert.Equal(t, "2", string(values[0].Data()))
}

func TestExtractRequestMethod(t *testing.T) {
	req := &httpmsg.Request{Method: "POST"}
	in := crs.Input{Type: crs.RequestMethod}
	values := Extract(req, in)
	require.Len(t, values, 1)
	assert.Equal(t, "POST", string(values[0].Data()))
}

func TestExtractUnknownInputTypeReturnsNil(t *testing.T) {
	req := &httpmsg.Request{}
	in := crs.Input{Type: crs.Geo}
	assert.Nil(t, Extract(req, in))
}

func TestExtractArgsPostFromJSONBody(t *testing.T) {
	req := &httpmsg.Request{
		Method: "POST",
		Headers: []httpmsg.Header{{Name: "Content-Type", Value: "application/json"}},
		Body:   []byte(`{"user":{"name":"bob","id":5}}`),
	}
	in := crs.Input{Type: crs.ArgsPost}
	values := Extract(req, in)
	require.Len(t, values, 2)
}
