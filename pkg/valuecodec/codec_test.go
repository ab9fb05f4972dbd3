package valuecodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

func TestDecode_Frequency(t *testing.T) {
	formatted, raw, err := Decode(docsis.ValueTypeFrequency, []byte{0x23, 0x39, 0xF1, 0xC0}, Params{})
	require.NoError(t, err)
	require.Equal(t, "591 MHz", formatted)
	require.Equal(t, uint32(591000000), raw)
}

func TestEncodeDecode_Frequency_RoundTrip(t *testing.T) {
	b, err := Encode(docsis.ValueTypeFrequency, "591 MHz", Params{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x23, 0x39, 0xF1, 0xC0}, b)

	formatted, _, err := Decode(docsis.ValueTypeFrequency, b, Params{})
	require.NoError(t, err)
	require.Equal(t, "591 MHz", formatted)
}

func TestEncodeDecode_IPv4_RoundTrip(t *testing.T) {
	b, err := Encode(docsis.ValueTypeIPv4, "192.168.100.10", Params{})
	require.NoError(t, err)
	require.Equal(t, []byte{0xC0, 0xA8, 0x64, 0x0A}, b)

	formatted, _, err := Decode(docsis.ValueTypeIPv4, b, Params{})
	require.NoError(t, err)
	require.Equal(t, "192.168.100.10", formatted)
}

func TestDecode_Boolean(t *testing.T) {
	formatted, raw, err := Decode(docsis.ValueTypeBoolean, []byte{0x01}, Params{})
	require.NoError(t, err)
	require.Equal(t, "enabled", formatted)
	require.Equal(t, true, raw)
}

func TestBooleanEncode_ManySpellings(t *testing.T) {
	for _, word := range []string{"enabled", "on", "true", "yes", "1"} {
		b, err := Encode(docsis.ValueTypeBoolean, word, Params{})
		require.NoError(t, err, word)
		require.Equal(t, []byte{0x01}, b, word)
	}
	for _, word := range []string{"disabled", "off", "false", "no", "0"} {
		b, err := Encode(docsis.ValueTypeBoolean, word, Params{})
		require.NoError(t, err, word)
		require.Equal(t, []byte{0x00}, b, word)
	}
}

func TestPercentage_AllForms(t *testing.T) {
	for _, s := range []string{"75%", "0.75", "75"} {
		b, err := Encode(docsis.ValueTypePercentage, s, Params{})
		require.NoError(t, err, s)
		require.Equal(t, []byte{75}, b, s)
	}
}

func TestEnum_UnknownValueRoundTrips(t *testing.T) {
	domain := docsis.EnumDomain{1: "foo", 2: "bar"}
	formatted, raw, err := Decode(docsis.ValueTypeEnum, []byte{99}, Params{EnumDomain: domain})
	require.NoError(t, err)
	require.Equal(t, "99 (unknown)", formatted)
	require.Equal(t, 99, raw)

	b, err := Encode(docsis.ValueTypeEnum, formatted, Params{EnumDomain: domain})
	require.NoError(t, err)
	require.Equal(t, []byte{99}, b)
}

func TestEnum_KnownValue(t *testing.T) {
	domain := docsis.EnumDomain{1: "foo", 2: "bar"}
	formatted, _, err := Decode(docsis.ValueTypeEnum, []byte{2}, Params{EnumDomain: domain})
	require.NoError(t, err)
	require.Equal(t, "bar", formatted)

	b, err := Encode(docsis.ValueTypeEnum, "BAR", Params{EnumDomain: domain})
	require.NoError(t, err)
	require.Equal(t, []byte{2}, b)
}

func TestOID_RoundTrip(t *testing.T) {
	cases := [][]int{
		{1, 3, 6, 1, 4, 1, 8595, 20, 17, 1, 4, 0},
		{0, 0},
		{2, 39, 100},
	}
	for _, arcs := range cases {
		b, err := EncodeOIDArcs(arcs)
		require.NoError(t, err)
		got, err := DecodeOIDArcs(b)
		require.NoError(t, err)
		require.Equal(t, arcs, got)
	}
}

func TestDecode_FallsBackToHexOnTypeMismatch(t *testing.T) {
	// 3-byte value is invalid for ipv4 (needs 4); Decode must never error,
	// it falls back to hex per spec.md §4.7 step 5.
	formatted, _, err := Decode(docsis.ValueTypeIPv4, []byte{0x01, 0x02, 0x03}, Params{})
	require.NoError(t, err)
	require.Equal(t, "01 02 03", formatted)
}

func TestHexFormatting(t *testing.T) {
	require.Equal(t, "", FormatHex(nil))
	require.Equal(t, "AA BB CC", FormatHex([]byte{0xAA, 0xBB, 0xCC}))
}

func TestParseHex_Separators(t *testing.T) {
	for _, s := range []string{"AABBCC", "AA BB CC", "AA:BB:CC", "AA-BB-CC"} {
		b, err := ParseHex(s)
		require.NoError(t, err, s)
		require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, b, s)
	}
}

func TestASN1Object_RoundTrip(t *testing.T) {
	obj := &docsis.ASN1Object{OID: "1.3.6.1.4.1.8595.20.17.1.4.0", Type: "INTEGER", Value: int64(2)}
	der, err := EncodeASN1Object(obj)
	require.NoError(t, err)

	got, err := DecodeASN1Object(der)
	require.NoError(t, err)
	require.Equal(t, obj.OID, got.OID)
	require.Equal(t, obj.Type, got.Type)
	require.Equal(t, obj.Value, got.Value)
}

func TestVendorOUI_RoundTrip(t *testing.T) {
	b, err := Encode(docsis.ValueTypeVendorOUI, "00:11:22", Params{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x11, 0x22}, b)

	formatted, _, err := Decode(docsis.ValueTypeVendorOUI, b, Params{})
	require.NoError(t, err)
	require.Equal(t, "00:11:22", formatted)
}

func TestPowerQuarterDB(t *testing.T) {
	formatted, _, err := Decode(docsis.ValueTypePowerQuarterDB, []byte{40}, Params{})
	require.NoError(t, err)
	require.Equal(t, "10.00 dBmV", formatted)

	b, err := Encode(docsis.ValueTypePowerQuarterDB, "10.0 dBmV", Params{})
	require.NoError(t, err)
	require.Equal(t, []byte{40}, b)
}
