package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWWWFormURLEncoded(t *testing.T) {
	fields, err := ParseWWWFormURLEncoded([]byte("a=1&b=2&flag"))
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, FormField{Name: "a", Value: "1"}, fields[0])
	assert.Equal(t, FormField{Name: "b", Value: "2"}, fields[1])
	assert.Equal(t, FormField{Name: "flag", Value: ""}, fields[2])
}

func TestParseWWWFormURLEncodedEmpty(t *testing.T) {
	fields, err := ParseWWWFormURLEncoded(nil)
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestParseWWWFormURLEncodedInvalidUTF8(t *testing.T) {
	_, err := ParseWWWFormURLEncoded([]byte{0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidBodyUTF8)
}

func TestParseWWWFormURLEncodedDoesNotPercentDecode(t *testing.T) {
	fields, err := ParseWWWFormURLEncoded([]byte("q=a%20b"))
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "a%20b", fields[0].Value)
}
