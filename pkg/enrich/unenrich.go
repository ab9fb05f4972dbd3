package enrich

import (
	"github.com/awksedgreep/bindocsis/pkg/docsis"
	"github.com/awksedgreep/bindocsis/pkg/tlvcodec"
	"github.com/awksedgreep/bindocsis/pkg/valuecodec"
)

// UnEnrich collapses an EnrichedTlv tree back into RawTlvs, the inverse
// of Enrich (spec.md §4.8). Compound nodes keep their SubTlvs populated
// rather than being flattened here; TlvCodec.Serialize performs the
// final flattening to bytes.
func UnEnrich(enriched []*docsis.EnrichedTlv, opts Options) ([]*docsis.RawTlv, error) {
	return unEnrichSequence(enriched, docsis.ContextPath{}, opts)
}

func unEnrichSequence(enriched []*docsis.EnrichedTlv, path docsis.ContextPath, opts Options) ([]*docsis.RawTlv, error) {
	out := make([]*docsis.RawTlv, 0, len(enriched))
	for _, e := range enriched {
		raw, err := unEnrichOne(e, path, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func unEnrichOne(e *docsis.EnrichedTlv, path docsis.ContextPath, opts Options) (*docsis.RawTlv, error) {
	if e.Type == tlvcodec.EndOfDataMarker {
		return &docsis.RawTlv{Type: e.Type, Length: 0, Value: []byte{}}, nil
	}

	if len(e.SubTlvs) > 0 {
		childPath := path.Append(int(e.Type))
		children, err := unEnrichSequence(e.SubTlvs, childPath, opts)
		if err != nil {
			return nil, err
		}
		return &docsis.RawTlv{Type: e.Type, SubTlvs: children}, nil
	}

	if e.StructuredValue != nil {
		value, err := valuecodec.EncodeASN1Object(e.StructuredValue)
		if err != nil {
			return nil, err
		}
		return &docsis.RawTlv{Type: e.Type, Length: len(value), Value: value}, nil
	}

	entry := lookup(&docsis.RawTlv{Type: e.Type}, path, opts)
	params := valuecodec.Params{EnumDomain: entry.EnumDomain, EnumWidth: entry.EnumWidth, Strict: opts.Strict}
	value, err := valuecodec.Encode(e.ValueType, e.FormattedValue, params)
	if err != nil {
		// Encoding the edited formatted value failed; fall back to the
		// raw bytes retained from enrichment rather than losing the TLV
		// entirely (spec.md §4.8, §7: un-enrichment failures fall back
		// to preserved raw bytes when possible).
		if len(e.Value) > 0 {
			return &docsis.RawTlv{Type: e.Type, Length: len(e.Value), Value: e.Value}, nil
		}
		return nil, err
	}
	return &docsis.RawTlv{Type: e.Type, Length: len(value), Value: value}, nil
}
