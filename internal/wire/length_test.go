package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthCodec_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		length int
	}{
		{"zero", 0},
		{"short-form-max", 127},
		{"long-form-1-min", 128},
		{"long-form-1-max", 255},
		{"long-form-2-min", 256},
		{"long-form-2-max", 65535},
		{"long-form-4-min", 65536},
		{"long-form-4-max", 1<<32 - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			require.NoError(t, EncodeLength(w, tc.length))

			r := NewReader(w.Bytes())
			got, err := DecodeLength(r)
			require.NoError(t, err)
			require.Equal(t, tc.length, got)
			require.Equal(t, 0, r.Remaining(), "decode should consume exactly the encoded length bytes")
		})
	}
}

func TestLengthCodec_ShortestForm(t *testing.T) {
	cases := []struct {
		length   int
		wantLead byte
	}{
		{0, 0x00},
		{127, 0x7f},
		{128, 0x81},
		{255, 0x81},
		{256, 0x82},
		{65535, 0x82},
		{65536, 0x84},
	}

	for _, tc := range cases {
		w := NewWriter()
		require.NoError(t, EncodeLength(w, tc.length))
		require.Equal(t, tc.wantLead, w.Bytes()[0])
	}
}

func TestLengthCodec_EncodeRejectsOutOfRange(t *testing.T) {
	w := NewWriter()
	err := EncodeLength(w, 1<<32)
	require.Error(t, err)
}

func TestLengthCodec_DecodeRejectsBadLongForm(t *testing.T) {
	// 0x83 is not in {0x81, 0x82, 0x84}.
	r := NewReader([]byte{0x83, 0x01, 0x02, 0x03})
	_, err := DecodeLength(r)
	require.Error(t, err)
}

func TestLengthCodec_DecodeTruncated(t *testing.T) {
	// 0x82 claims 2 length bytes but only one is present.
	r := NewReader([]byte{0x82, 0x01})
	_, err := DecodeLength(r)
	require.Error(t, err)
}
