package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func restore() func() {
	ma, mi, pa, co := majorVer, minorVer, patchVer, commitVer
	return func() {
		majorVer, minorVer, patchVer, commitVer = ma, mi, pa, co
	}
}

func TestVersionParsing(t *testing.T) {
	defer restore()()

	require.NoError(t, parseVersions("v1.2.3", "abcdef0123"))
	require.Equal(t, uint64(1), Major())
	require.Equal(t, uint64(2), Minor())
	require.Equal(t, uint64(3), Patch())
	// only the first 8 hex digits are kept
	require.Equal(t, uint64(0xabcdef01), CommitHash())
	require.Equal(t, "v1.2.3-abcdef01", String())
	require.Equal(t, uint64(0x01_02_0003_abcdef01), Uint64())
}

func TestVersionParsingErrors(t *testing.T) {
	defer restore()()

	require.Error(t, parseVersions("1.2.3", ""))
	require.Error(t, parseVersions("v256.0.0", ""))
	require.Error(t, parseVersions("v1.2.3", "xyz"))

	// a failed parse leaves the version untouched
	require.NoError(t, parseVersions("v0.9.1", ""))
	require.Error(t, parseVersions("v1.0.0", "zz"))
	require.Equal(t, "v0.9.1-0", String())
}

func TestEmptyVersion(t *testing.T) {
	defer restore()()

	require.NoError(t, parseVersions("", "abc"))
	require.Equal(t, "v0.1.0-0", String())
}
