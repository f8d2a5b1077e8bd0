package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateByteRangeMatchesDisallowedByte(t *testing.T) {
	r, err := validateByteRange([]byte{65, 66, 1}, "32-126")
	require.NoError(t, err)
	assert.True(t, r.Matched, "control byte 0x01 is outside 32-126")
}

func TestValidateByteRangeAllAllowed(t *testing.T) {
	r, err := validateByteRange([]byte("ABC"), "32-126,9,10,13")
	require.NoError(t, err)
	assert.False(t, r.Matched)
}

func TestValidateByteRangeInvalidRange(t *testing.T) {
	_, err := validateByteRange([]byte("A"), "abc-126")
	assert.Error(t, err)
}

func TestValidateURLEncodingMalformedSequence(t *testing.T) {
	r, err := validateURLEncoding([]byte("a%2"), "")
	require.NoError(t, err)
	assert.True(t, r.Matched)
}

func TestValidateURLEncodingWellFormed(t *testing.T) {
	r, err := validateURLEncoding([]byte("a%20b"), "")
	require.NoError(t, err)
	assert.False(t, r.Matched)
}
