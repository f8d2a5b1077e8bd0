package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCookieHeader(t *testing.T) {
	pairs := ParseCookieHeader(`session=abc123; user="jdoe"; empty=`)
	require.Len(t, pairs, 3)
	assert.Equal(t, CookiePair{Name: "session", Value: "abc123"}, pairs[0])
	assert.Equal(t, CookiePair{Name: "user", Value: "jdoe"}, pairs[1])
	assert.Equal(t, CookiePair{Name: "empty", Value: ""}, pairs[2])
}

func TestParseCookieHeaderInvalidUTF8(t *testing.T) {
	pairs := ParseCookieHeader("session=\xff\xfe")
	assert.Nil(t, pairs)
}

func TestCookiesRejectsMultipleHeaders(t *testing.T) {
	_, err := Cookies([]string{"a=1", "b=2"})
	assert.ErrorIs(t, err, ErrMultipleCookieHeaders)
}

func TestCookiesNoHeader(t *testing.T) {
	pairs, err := Cookies(nil)
	require.NoError(t, err)
	assert.Nil(t, pairs)
}

func TestCookiesSingleHeader(t *testing.T) {
	pairs, err := Cookies([]string{"a=1; b=2"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
}
