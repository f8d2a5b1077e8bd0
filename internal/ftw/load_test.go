package ftw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileAppliesDefaultsAndMagic(t *testing.T) {
	data := []byte(`
meta:
  name: example
tests:
  - test_title: basic-get
    stages:
      - stage:
          input:
            uri: "/?q=<script>"
          output:
            status: 403
`)
	f, err := ParseFile("example.yaml", data)
	require.NoError(t, err)
	require.True(t, f.Meta.Enabled, "enabled defaults to true when absent")

	stages := f.Stages()
	require.Len(t, stages, 1)

	in := stages[0].Input
	assert.Equal(t, "localhost", in.DestAddr)
	assert.Equal(t, 80, in.Port)
	assert.Equal(t, "GET", in.Method)
	assert.Equal(t, "HTTP/1.1", in.Version)
	assert.Contains(t, in.URI, "%3C")
	assert.NotContains(t, in.URI, "<script>")

	require.NotNil(t, stages[0].Output.Status)
	assert.True(t, stages[0].Output.Status.Matches(403))
	assert.False(t, stages[0].Output.Status.Matches(200))
}

func TestParseFileDefaultsContentTypeWhenBodyPresent(t *testing.T) {
	data := []byte(`
meta:
  name: example
tests:
  - test_title: post-body
    stages:
      - stage:
          input:
            method: POST
            data: "a=1&b=2"
`)
	f, err := ParseFile("example.yaml", data)
	require.NoError(t, err)
	in := f.Stages()[0].Input
	assert.Equal(t, "application/x-www-form-urlencoded", in.Headers["Content-Type"])
}

func TestParseFileMultilineData(t *testing.T) {
	data := []byte(`
meta:
  name: example
tests:
  - test_title: multiline
    stages:
      - stage:
          input:
            data:
              - "line one"
              - "line two"
`)
	f, err := ParseFile("example.yaml", data)
	require.NoError(t, err)
	in := f.Stages()[0].Input
	require.NotNil(t, in.Data.Text)
	assert.Equal(t, "line one\r\nline two", *in.Data.Text)
}

func TestOutputStatusAnyOf(t *testing.T) {
	data := []byte(`
meta:
  name: example
tests:
  - test_title: any-of
    stages:
      - stage:
          input:
            uri: "/"
          output:
            status: [200, 301, 302]
`)
	f, err := ParseFile("example.yaml", data)
	require.NoError(t, err)
	status := f.Stages()[0].Output.Status
	assert.True(t, status.Matches(301))
	assert.False(t, status.Matches(403))
}

func TestNilOutputStatusMatchesAnything(t *testing.T) {
	var s *OutputStatus
	assert.True(t, s.Matches(200))
	assert.True(t, s.Matches(500))
}
