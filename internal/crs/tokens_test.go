package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want InputType
	}{
		{"exact", "ARGS", Args},
		{"lowercase", "args", Args},
		{"mixed case", "Args_Names", ArgsNames},
		{"does not shadow prefix", "ARGS_NAMES", ArgsNames},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InputTypeFromName(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputTypeFromNameUnknown(t *testing.T) {
	_, ok := InputTypeFromName("NOT_A_VARIABLE")
	assert.False(t, ok)
}

func TestOperatorTypeFromNameIsCaseSensitive(t *testing.T) {
	typ, ok := OperatorTypeFromName("detectSQLi")
	require.True(t, ok)
	assert.Equal(t, OpDetectSQLi, typ)

	_, ok = OperatorTypeFromName("detectsqli")
	assert.False(t, ok, "operator names are case-sensitive per the directive grammar")
}

func TestActionTypeFromNameIsCaseSensitive(t *testing.T) {
	typ, ok := ActionTypeFromName("chain")
	require.True(t, ok)
	assert.Equal(t, ActionChain, typ)

	_, ok = ActionTypeFromName("Chain")
	assert.False(t, ok)
}

func TestVariantsRoundTripThroughName(t *testing.T) {
	for _, typ := range InputTypeVariants() {
		got, ok := InputTypeFromName(typ.Name())
		require.True(t, ok, "name %q for %v", typ.Name(), typ)
		assert.Equal(t, typ, got)
	}
	for _, typ := range OperatorTypeVariants() {
		got, ok := OperatorTypeFromName(typ.Name())
		require.True(t, ok)
		assert.Equal(t, typ, got)
	}
	for _, typ := range ActionTypeVariants() {
		got, ok := ActionTypeFromName(typ.Name())
		require.True(t, ok)
		assert.Equal(t, typ, got)
	}
}
