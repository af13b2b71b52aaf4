package bytes

import (
	"encoding/hex"
	"testing"

	"github.com/beatoz/swoupon-go/libs/jsonx"
	"github.com/stretchr/testify/require"
)

var (
	// raw Q64.64 of 1.0 as 16 big-endian bytes
	rawOne = HexBytes{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}
)

func Test_MarshalJSON(t *testing.T) {
	bz, err := jsonx.Marshal(rawOne)
	require.NoError(t, err)
	require.Equal(t, `"00000000000000010000000000000000"`, string(bz))
}

// Test_UnmarshalJSON_HexString test to unmarshal hex string("AABB...").
func Test_UnmarshalJSON_HexString(t *testing.T) {
	hexStr := hex.EncodeToString(rawOne)
	require.Equal(t, len(rawOne)*2, len(hexStr))
	data := []byte("\"" + hexStr + "\"")

	hexBytes := HexBytes{}
	require.NoError(t, jsonx.Unmarshal(data, &hexBytes))
	require.Equal(t, rawOne, hexBytes)
}

// Test_UnmarshalJSON_0xHexString test to unmarshal "0xAABB...".
func Test_UnmarshalJSON_0xHexString(t *testing.T) {
	hexStr := hex.EncodeToString(rawOne)
	data := []byte("\"0x" + hexStr + "\"")

	hexBytes := HexBytes{}
	require.NoError(t, jsonx.Unmarshal(data, &hexBytes))
	require.Equal(t, rawOne, hexBytes)
}

func Test_UnmarshalJSON_Invalid(t *testing.T) {
	hexBytes := HexBytes{}
	require.Error(t, hexBytes.UnmarshalJSON([]byte(`"xyz"`)))
	require.Error(t, hexBytes.UnmarshalJSON([]byte(`0011`)))
}

func Test_String(t *testing.T) {
	require.Equal(t, "00000000000000010000000000000000", rawOne.String())
	require.True(t, Equal(rawOne, rawOne.Copy()))
}
