package surface

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awksedgreep/bindocsis/pkg/docsis"
	"github.com/awksedgreep/bindocsis/pkg/enrich"
	"github.com/awksedgreep/bindocsis/pkg/registry"
	"github.com/awksedgreep/bindocsis/pkg/tlvcodec"
)

func newOpts() enrich.Options {
	return enrich.Options{Registry: registry.New(registry.Options{})}
}

func TestScenarioFive_YAMLLeafRoundTripsToBytes(t *testing.T) {
	yamlDoc := []byte("docsis_version: \"3.1\"\ntlvs:\n  - type: 1\n    formatted_value: \"591 MHz\"\n")

	doc, err := UnmarshalYAML(yamlDoc)
	require.NoError(t, err)
	require.Len(t, doc.Tlvs, 1)

	enriched := ToEnriched(doc.Tlvs)
	enriched[0].ValueType = docsis.ValueTypeFrequency

	raws, err := enrich.UnEnrich(enriched, newOpts())
	require.NoError(t, err)

	out, err := tlvcodec.Serialize(raws, tlvcodec.SerializeOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0}, out)
}

func TestScenarioSix_SNMPMIBObjectSurfaceRoundTrips(t *testing.T) {
	doc := &Document{
		DocsisVersion: "3.1",
		Tlvs: []*Node{
			{
				Type:      11,
				ValueType: string(docsis.ValueTypeCompound),
				Subtlvs: []*Node{
					{
						Type:      48,
						ValueType: string(docsis.ValueTypeASN1DER),
						FormattedValue: map[string]any{
							"oid":   "1.3.6.1.4.1.8595.20.17.1.4.0",
							"type":  "INTEGER",
							"value": int64(2),
						},
					},
				},
			},
		},
	}

	enriched := ToEnriched(doc.Tlvs)
	raws, err := enrich.UnEnrich(enriched, newOpts())
	require.NoError(t, err)

	wire, err := tlvcodec.Serialize(raws, tlvcodec.SerializeOptions{})
	require.NoError(t, err)

	reparsed, err := tlvcodec.Parse(wire, tlvcodec.ParseOptions{})
	require.NoError(t, err)

	reenriched, err := enrich.Enrich(reparsed, newOpts())
	require.NoError(t, err)

	nodes := FromEnriched(reenriched)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Subtlvs, 1)
	got := nodes[0].Subtlvs[0].FormattedValue.(map[string]any)
	require.Equal(t, "1.3.6.1.4.1.8595.20.17.1.4.0", got["oid"])
	require.Equal(t, "INTEGER", got["type"])
	require.Equal(t, int64(2), got["value"])
}

func TestYAML_MarshalUnmarshalRoundTrip(t *testing.T) {
	doc := &Document{
		DocsisVersion: "3.1",
		Tlvs: []*Node{
			{Type: 1, Name: "Downstream Frequency", ValueType: "frequency", FormattedValue: "591 MHz"},
		},
	}
	b, err := MarshalYAML(doc)
	require.NoError(t, err)

	back, err := UnmarshalYAML(b)
	require.NoError(t, err)
	require.Equal(t, doc.DocsisVersion, back.DocsisVersion)
	require.Equal(t, doc.Tlvs[0].FormattedValue, back.Tlvs[0].FormattedValue)
}

func TestJSON_MarshalUnmarshalRoundTrip(t *testing.T) {
	doc := &Document{
		DocsisVersion: "3.1",
		Tlvs: []*Node{
			{Type: 1, Name: "Downstream Frequency", ValueType: "frequency", FormattedValue: "591 MHz"},
		},
	}
	b, err := MarshalJSON(doc)
	require.NoError(t, err)

	back, err := UnmarshalJSON(b)
	require.NoError(t, err)
	require.Equal(t, doc.DocsisVersion, back.DocsisVersion)
}
