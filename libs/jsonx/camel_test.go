package jsonx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ToLowerFirstCamel(t *testing.T) {
	require.Equal(t, "testUnderscore", toLowerFirstCamel("_test_underscore"))
	require.Equal(t, "potentialTi", toLowerFirstCamel("potential_ti"))
	require.Equal(t, "tiCap", toLowerFirstCamel("TiCap"))
	require.Equal(t, "volume", toLowerFirstCamel("volume"))
	require.Equal(t, "", toLowerFirstCamel(""))
}

func Test_ParseTag(t *testing.T) {
	name, opts := parseTag("volume,string,omitempty")
	require.Equal(t, "volume", name)
	require.True(t, opts.has("string"))
	require.True(t, opts.has("omitempty"))
	require.False(t, opts.has("inline"))

	name, opts = parseTag("")
	require.Equal(t, "", name)
	require.Empty(t, opts)
}
