// Package enrich implements the bidirectional Enricher/Un-enricher
// pipeline (spec.md §4.7–§4.8): turning a flat RawTlv tree into an
// EnrichedTlv tree annotated with registry metadata and human-readable
// values, and collapsing an EnrichedTlv tree back into RawTlvs ready for
// TlvCodec.Serialize.
package enrich

import (
	"github.com/awksedgreep/bindocsis/pkg/bderrors"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
	"github.com/awksedgreep/bindocsis/pkg/registry"
	"github.com/awksedgreep/bindocsis/pkg/tlvcodec"
	"github.com/awksedgreep/bindocsis/pkg/valuecodec"
)

// defaultMaxNestingDepth bounds speculative compound discovery recursion
// (spec.md §5): a hostile or corrupt file cannot force unbounded stack
// growth by nesting compound-looking bytes inside compound-looking bytes.
const defaultMaxNestingDepth = 32

// Options configures an Enrich/UnEnrich pass.
type Options struct {
	// Registry resolves TLV and sub-TLV metadata. Required.
	Registry *registry.Registry
	// MaxNestingDepth caps compound discovery recursion. Zero means
	// defaultMaxNestingDepth.
	MaxNestingDepth int
	// Strict disables lenient value encoding fallbacks in ValueCodec
	// (spec.md §4.3/§9's hex-vs-literal string ambiguity).
	Strict bool
}

func (o Options) maxDepth() int {
	if o.MaxNestingDepth <= 0 {
		return defaultMaxNestingDepth
	}
	return o.MaxNestingDepth
}

// Enrich annotates a flat RawTlv sequence with registry metadata and
// formatted values, recursively discovering and enriching compound
// sub-TLVs (spec.md §4.7).
func Enrich(raws []*docsis.RawTlv, opts Options) ([]*docsis.EnrichedTlv, error) {
	return enrichSequence(raws, docsis.ContextPath{}, 0, opts)
}

func enrichSequence(raws []*docsis.RawTlv, path docsis.ContextPath, depth int, opts Options) ([]*docsis.EnrichedTlv, error) {
	out := make([]*docsis.EnrichedTlv, 0, len(raws))
	for _, raw := range raws {
		enriched, err := enrichOne(raw, path, depth, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}

func enrichOne(raw *docsis.RawTlv, path docsis.ContextPath, depth int, opts Options) (*docsis.EnrichedTlv, error) {
	if raw.Type == tlvcodec.EndOfDataMarker {
		return &docsis.EnrichedTlv{Type: raw.Type, Length: 0, Value: []byte{}, Name: "End-of-Data Marker", ValueType: docsis.ValueTypeMarker}, nil
	}

	entry := lookup(raw, path, opts)

	enriched := &docsis.EnrichedTlv{
		Type:              raw.Type,
		Length:            raw.Length,
		Value:             raw.Value,
		Name:              entry.Name,
		Description:       entry.Description,
		ValueType:         entry.ValueType,
		IntroducedVersion: entry.IntroducedVersion,
		Category:          entry.Category,
		MaxLength:         entry.MaxLength,
		SubtlvSupport:     entry.SubtlvSupport,
		MetadataSource:    entry.MetadataSource,
	}

	if shouldAttemptCompound(entry, raw.Value) {
		if depth >= opts.maxDepth() {
			err := bderrors.New(bderrors.KindExcessiveNesting, "TLV type %d nests past the maximum depth of %d", raw.Type, opts.maxDepth())
			return nil, tlvContext(path, raw.Type).Annotate(err)
		}
		children, err := tlvcodec.Parse(raw.Value, tlvcodec.ParseOptions{ParsePastMarker: true})
		if err == nil && len(children) > 0 {
			childPath := path.Append(int(raw.Type))
			enrichedChildren, err := enrichSequence(children, childPath, depth+1, opts)
			if err == nil {
				enriched.ValueType = docsis.ValueTypeCompound
				enriched.SubTlvs = enrichedChildren
				enriched.Value = nil
				return enriched, nil
			}
			if kind, ok := bderrors.KindOf(err); ok && kind == bderrors.KindExcessiveNesting {
				return nil, err
			}
		}
		// Speculative parse failed: conservatively render as opaque hex
		// rather than claiming a compound shape that doesn't hold
		// (spec.md §4.7 step 5's compound-discovery conservatism).
		enriched.ValueType = docsis.ValueTypeHexString
	}

	if enriched.ValueType == docsis.ValueTypeASN1DER {
		if obj, err := valuecodec.DecodeASN1Object(raw.Value); err == nil {
			enriched.StructuredValue = obj
			enriched.FormattedValue = ""
			return enriched, nil
		}
	}

	params := valuecodec.Params{EnumDomain: entry.EnumDomain, EnumWidth: entry.EnumWidth, Strict: opts.Strict}
	formatted, rawValue, err := valuecodec.Decode(enriched.ValueType, raw.Value, params)
	if err != nil {
		return nil, tlvContext(path, raw.Type).Annotate(err)
	}
	enriched.FormattedValue = formatted
	enriched.RawValue = rawValue
	return enriched, nil
}

// tlvContext builds the ParseContext identifying a TLV by its enclosing
// path rather than a byte offset (spec.md §3): enrich operates on
// already-framed RawTlv values, so the only useful coordinate it can add
// to an error is which TLV, at which nesting level, it was resolving.
func tlvContext(path docsis.ContextPath, typ byte) bderrors.ParseContext {
	ctx := bderrors.ParseContext{Format: "tlv"}
	for _, t := range path {
		ctx = ctx.Push(t)
	}
	return ctx.Push(int(typ))
}

// shouldAttemptCompound implements the compound-discovery predicate
// (spec.md §4.7 step 4), resolved conservatively: discovery is only
// attempted when the registry actively says this node is (or might be)
// compound, never for a value with an explicit non-compound type like
// vendor, string, or oid just because it happens to be 3+ bytes long.
func shouldAttemptCompound(entry docsis.SpecEntry, value []byte) bool {
	if entry.ValueType == docsis.ValueTypeCompound || entry.SubtlvSupport {
		return true
	}
	if entry.ValueType == docsis.ValueTypeUnknown && len(value) >= 3 {
		return true
	}
	return false
}

func lookup(raw *docsis.RawTlv, path docsis.ContextPath, opts Options) docsis.SpecEntry {
	if len(path) == 0 {
		return opts.Registry.Lookup(int(raw.Type))
	}
	return opts.Registry.LookupSubtlv(path, int(raw.Type))
}
