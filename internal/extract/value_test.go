package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAnonymousHasNoName(t *testing.T) {
	v := NewValue(SourceMethod, []byte("GET"))
	_, ok := v.Name()
	assert.False(t, ok)
	assert.Equal(t, []byte("GET"), v.Data())
}

func TestValueNamed(t *testing.T) {
	v := NewNamedValue(SourceHeader, []byte("X-Foo"), []byte("bar"))
	name, ok := v.Name()
	require.True(t, ok)
	assert.Equal(t, "X-Foo", string(name))
	assert.Equal(t, "bar", string(v.Data()))
}

func TestValueAsName(t *testing.T) {
	v := NewNamedValue(SourceHeader, []byte("X-Foo"), []byte("bar"))
	nameVal, ok := v.AsName(SourceHeaderName)
	require.True(t, ok)
	assert.Equal(t, SourceHeaderName, nameVal.Source())
	assert.Equal(t, "X-Foo", string(nameVal.Data()))

	anon := NewValue(SourceMethod, []byte("GET"))
	_, ok = anon.AsName(SourceHeaderName)
	assert.False(t, ok)
}

func TestSourceTypeVariantsMatchString(t *testing.T) {
	for _, s := range SourceTypeVariants() {
		assert.NotEqual(t, "Unknown", s.String())
	}
}
