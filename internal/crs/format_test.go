package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTripSucceedsForParsedFile(t *testing.T) {
	src := `SecRule ARGS|REQUEST_HEADERS:User-Agent "@rx (?i)attack" "id:1001,phase:2,deny,msg:'blocked request',tag:'attack-generic'"
SecMarker "BEGIN-RULES"
SecAction "id:2,phase:1,nolog,pass"
`
	f, errs := Parse("roundtrip.conf", src)
	require.Empty(t, errs)
	require.NoError(t, VerifyRoundTrip(f))
}

func TestFormatReparsesToEquivalentActionList(t *testing.T) {
	src := `SecRule TX:score "@gt 5" "id:10,phase:5,setvar:'tx.x=+1'"`
	f, errs := Parse("x.conf", src)
	require.Empty(t, errs)

	rendered := Format(f)
	reparsed, errs := Parse("x.conf", rendered)
	require.Empty(t, errs)
	assert.Equal(t, f.Entries, reparsed.Entries)
}

func TestVerifyRoundTripSurvivesBackslashesAndQuotesInArgs(t *testing.T) {
	src := `SecRule ARGS "@rx ^\d+\.\d+$" "id:11,phase:2,deny,msg:'say \"hi\"\nthen stop'"`
	f, errs := Parse("escapes.conf", src)
	require.Empty(t, errs)
	require.NoError(t, VerifyRoundTrip(f))
}
