package tlvcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

func TestParse_FlatSequence(t *testing.T) {
	// 01 04 23 39 F1 C0  03 01 01  FF
	input := []byte{
		0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0,
		0x03, 0x01, 0x01,
		0xFF,
	}

	tlvs, err := Parse(input, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, tlvs, 3)

	require.Equal(t, byte(1), tlvs[0].Type)
	require.Equal(t, []byte{0x23, 0x39, 0xF1, 0xC0}, tlvs[0].Value)

	require.Equal(t, byte(3), tlvs[1].Type)
	require.Equal(t, []byte{0x01}, tlvs[1].Value)

	require.Equal(t, byte(255), tlvs[2].Type)
	require.Equal(t, 0, tlvs[2].Length)
}

func TestParse_StopsAtMarkerByDefault(t *testing.T) {
	input := []byte{0xFF, 0x01, 0x01, 0x01} // trailing bytes after marker
	tlvs, err := Parse(input, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, tlvs, 1)
}

func TestParse_ParsePastMarker(t *testing.T) {
	input := []byte{0xFF, 0x01, 0x01, 0x01}
	tlvs, err := Parse(input, ParseOptions{ParsePastMarker: true})
	require.NoError(t, err)
	require.Len(t, tlvs, 2)
}

func TestParse_TruncatedTLV(t *testing.T) {
	// type 1, length 4, only 2 value bytes present
	input := []byte{0x01, 0x04, 0x23, 0x39}
	_, err := Parse(input, ParseOptions{})
	require.Error(t, err)
}

func TestParse_CompoundSubTlvBytesKeptOpaque(t *testing.T) {
	// type 21, length 3, value 01 01 05 -- parse does not recurse
	input := []byte{0x15, 0x03, 0x01, 0x01, 0x05}
	tlvs, err := Parse(input, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, tlvs, 1)
	require.Equal(t, []byte{0x01, 0x01, 0x05}, tlvs[0].Value)
	require.Nil(t, tlvs[0].SubTlvs)
}

func TestRoundTrip_SerializeOfParseIsIdentity(t *testing.T) {
	inputs := [][]byte{
		{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0, 0x03, 0x01, 0x01, 0xFF},
		{0x0C, 0x04, 0xC0, 0xA8, 0x64, 0x0A},
		{0x15, 0x03, 0x01, 0x01, 0x05},
		{},
	}

	for _, in := range inputs {
		tlvs, err := Parse(in, ParseOptions{})
		require.NoError(t, err)
		out, err := Serialize(tlvs, SerializeOptions{})
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestSerialize_LongFormLengths(t *testing.T) {
	cases := []int{127, 128, 255, 256, 65535, 65536}
	for _, n := range cases {
		value := make([]byte, n)
		tlvs := []*docsis.RawTlv{{Type: 43, Length: n, Value: value}}
		out, err := Serialize(tlvs, SerializeOptions{})
		require.NoError(t, err)

		back, err := Parse(out, ParseOptions{})
		require.NoError(t, err)
		require.Len(t, back, 1)
		require.Equal(t, n, len(back[0].Value))
	}
}

func TestSerialize_FlattensSubTlvsWhenValueUnset(t *testing.T) {
	tlvs := []*docsis.RawTlv{
		{
			Type: 21,
			SubTlvs: []*docsis.RawTlv{
				{Type: 1, Value: []byte{0x05}},
			},
		},
	}
	out, err := Serialize(tlvs, SerializeOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x15, 0x03, 0x01, 0x01, 0x05}, out)
}

func TestSerialize_Terminate(t *testing.T) {
	tlvs := []*docsis.RawTlv{{Type: 3, Value: []byte{0x01}}}
	out, err := Serialize(tlvs, SerializeOptions{Terminate: true})
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x01, 0x01, 0xFF, 0x00}, out)
}

func TestParse_ZeroLengthTLVs(t *testing.T) {
	input := []byte{0x02, 0x00, 0xFF}
	tlvs, err := Parse(input, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, tlvs, 2)
	require.Equal(t, 0, tlvs[0].Length)
	require.Equal(t, []byte{}, tlvs[0].Value)
}

// FuzzRoundTrip checks the invariant spec.md §8 anchors the whole codec
// on: any byte string that parses without error serializes back to
// exactly the bytes it was parsed from.
func FuzzRoundTrip(f *testing.F) {
	seeds := [][]byte{
		{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0, 0x03, 0x01, 0x01, 0xFF},
		{0x0C, 0x04, 0xC0, 0xA8, 0x64, 0x0A},
		{0x15, 0x03, 0x01, 0x01, 0x05},
		{0x02, 0x00, 0xFF},
		{0x2B, 0x81, 0x80},
		{},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input []byte) {
		tlvs, err := Parse(input, ParseOptions{})
		if err != nil {
			return
		}
		out, err := Serialize(tlvs, SerializeOptions{})
		require.NoError(t, err)
		require.Equal(t, input, out)
	})
}
