package enrich

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awksedgreep/bindocsis/pkg/docsis"
	"github.com/awksedgreep/bindocsis/pkg/registry"
	"github.com/awksedgreep/bindocsis/pkg/tlvcodec"
)

func newOpts() Options {
	return Options{Registry: registry.New(registry.Options{})}
}

func TestEnrich_ScenarioOne_DownstreamFrequency(t *testing.T) {
	raws, err := tlvcodec.Parse([]byte{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.Equal(t, "Downstream Frequency", enriched[0].Name)
	require.Equal(t, "591 MHz", enriched[0].FormattedValue)
}

func TestEnrich_ScenarioOne_FullSequenceWithMarker(t *testing.T) {
	original := []byte{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0, 0x03, 0x01, 0x01, 0xFF}
	raws, err := tlvcodec.Parse(original, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.Len(t, enriched, 3)
	require.Equal(t, "Downstream Frequency", enriched[0].Name)
	require.Equal(t, "591 MHz", enriched[0].FormattedValue)
	require.Equal(t, "Network Access Control", enriched[1].Name)
	require.Equal(t, "enabled", enriched[1].FormattedValue)
	require.Equal(t, byte(255), enriched[2].Type)

	back, err := UnEnrich(enriched, newOpts())
	require.NoError(t, err)
	out, err := tlvcodec.Serialize(back, tlvcodec.SerializeOptions{})
	require.NoError(t, err)
	require.Equal(t, original, out)
}

func TestEnrich_ScenarioTwo_CompoundSubTlv(t *testing.T) {
	raws, err := tlvcodec.Parse([]byte{0x04, 0x03, 0x01, 0x01, 0x05}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.True(t, enriched[0].IsCompound())
	require.Len(t, enriched[0].SubTlvs, 1)
	require.Equal(t, "Class ID", enriched[0].SubTlvs[0].Name)
}

func TestEnrich_ScenarioThree_IPv4(t *testing.T) {
	raws, err := tlvcodec.Parse([]byte{0x0C, 0x04, 0xC0, 0xA8, 0x64, 0x0A}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.Equal(t, "192.168.100.10", enriched[0].FormattedValue)
}

func TestEnrich_ScenarioFour_UnknownVendorTLV(t *testing.T) {
	raws, err := tlvcodec.Parse([]byte{200, 0x05, 0xDE, 0xAD, 0xBE, 0xEF, 0x01}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.Equal(t, docsis.ValueTypeVendor, enriched[0].ValueType)
	require.Equal(t, "DE AD BE EF 01", enriched[0].FormattedValue)

	back, err := UnEnrich(enriched, newOpts())
	require.NoError(t, err)
	out, err := tlvcodec.Serialize(back, tlvcodec.SerializeOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{200, 0x05, 0xDE, 0xAD, 0xBE, 0xEF, 0x01}, out)
}

func TestEnrich_VendorTLV_ShortValueNeverBecomesCompound(t *testing.T) {
	// A type-200 (vendor range) TLV with a short opaque value: length < 3
	// must never be speculatively treated as compound regardless of
	// registry hints (spec.md §4.7 step 4's conservatism rule).
	raws, err := tlvcodec.Parse([]byte{200, 0x02, 0xAA, 0xBB}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.False(t, enriched[0].IsCompound())
}

func TestEnrich_UnknownLongValue_AttemptsCompoundThenFallsBackToHex(t *testing.T) {
	// Bytes that do not decompose into valid sub-TLVs: a declared length
	// of 9 but only 3 bytes of value after it, inside an otherwise unknown
	// 5-byte TLV value. Discovery must fail closed to hex_string, not
	// error out.
	raws, err := tlvcodec.Parse([]byte{99, 0x05, 0x01, 0x09, 0xFF, 0x00, 0x00}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)
	require.Equal(t, docsis.ValueTypeHexString, enriched[0].ValueType)
}

func TestEnrich_RoundTrip_EnrichThenUnEnrichThenSerializeIsIdentity(t *testing.T) {
	original := []byte{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0, 0x04, 0x03, 0x01, 0x01, 0x05, 0x0C, 0x04, 0xC0, 0xA8, 0x64, 0x0A}
	raws, err := tlvcodec.Parse(original, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)

	back, err := UnEnrich(enriched, newOpts())
	require.NoError(t, err)

	out, err := tlvcodec.Serialize(back, tlvcodec.SerializeOptions{})
	require.NoError(t, err)
	require.Equal(t, original, out)
}

func TestEnrich_ContextPathDialect_MPLSServiceMultiplexing(t *testing.T) {
	// TLV 22 -> sub-TLV 43 -> sub-TLV 5 -> sub-TLV 2 -> sub-TLV 4, the
	// L2VPN dialect that overrides the default per-parent sub-TLV table
	// (spec.md §4.4's worked example).
	inner := []byte{4, 0x04, 0x00, 0x00, 0x00, 0x2A} // sub-TLV 4: uint32 value 42
	level2 := append([]byte{2, byte(len(inner))}, inner...)
	level1 := append([]byte{5, byte(len(level2))}, level2...)
	level0 := append([]byte{43, byte(len(level1))}, level1...)
	top := append([]byte{22, byte(len(level0))}, level0...)

	raws, err := tlvcodec.Parse(top, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, newOpts())
	require.NoError(t, err)

	require.Equal(t, "Upstream Packet Classification Encoding", enriched[0].Name)
	sub43 := enriched[0].SubTlvs[0]
	sub5 := sub43.SubTlvs[0]
	require.Equal(t, "L2VPN Encoding", sub5.Name)
	sub2 := sub5.SubTlvs[0]
	require.Equal(t, "Service Multiplexing", sub2.Name)
	sub4 := sub2.SubTlvs[0]
	require.Equal(t, "MPLS Service Multiplexing Value", sub4.Name)
}

func TestEnrich_MaxNestingDepthIsEnforced(t *testing.T) {
	opts := newOpts()
	opts.MaxNestingDepth = 1

	inner := []byte{1, 0x04, 0x23, 0x39, 0xF1, 0xC0}
	outer := append([]byte{99, byte(len(inner))}, inner...)
	doubled := append([]byte{99, byte(len(outer))}, outer...)

	raws, err := tlvcodec.Parse(doubled, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	_, err = Enrich(raws, opts)
	require.Error(t, err)
}

func TestUnEnrich_EncodeFailureFallsBackToPreservedRawBytes(t *testing.T) {
	opts := newOpts()

	raws, err := tlvcodec.Parse([]byte{0x02, 0x01, 0x07}, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	enriched, err := Enrich(raws, opts)
	require.NoError(t, err)
	require.Equal(t, docsis.ValueTypeUint8, enriched[0].ValueType)
	require.Equal(t, []byte{0x07}, enriched[0].Value, "raw bytes must still be retained on a leaf node")

	// Simulate an edit that leaves the formatted value unparseable; the
	// un-enricher must fall back to the bytes retained on Value rather
	// than erroring out the whole tree.
	enriched[0].FormattedValue = "not-a-number"

	back, err := UnEnrich(enriched, opts)
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.Equal(t, []byte{0x07}, back[0].Value)
}

func TestUnEnrich_EncodeFailurePropagatesWhenNoRawBytesRetained(t *testing.T) {
	opts := newOpts()

	e := &docsis.EnrichedTlv{
		Type:           2,
		ValueType:      docsis.ValueTypeUint8,
		FormattedValue: "not-a-number",
	}

	_, err := UnEnrich([]*docsis.EnrichedTlv{e}, opts)
	require.Error(t, err)
}
