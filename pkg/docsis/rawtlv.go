package docsis

// RawTlv is the structural record produced by TlvCodec.Parse and consumed
// by TlvCodec.Serialize: a type, a length, and the length bytes of value.
// SubTlvs is nil for every node TlvCodec itself produces (parsing never
// recurses, per spec.md §4.5 step 4); it is populated only by the
// Un-enricher, as the raw-tree counterpart of an EnrichedTlv's resolved
// sub-TLVs, before TlvCodec.Serialize flattens it back into Value bytes.
type RawTlv struct {
	Type    byte
	Length  int
	Value   []byte
	SubTlvs []*RawTlv
}

// IsCompound reports whether r carries child TLVs awaiting flattening.
func (r *RawTlv) IsCompound() bool {
	return len(r.SubTlvs) > 0
}

// Equal reports whether r and o describe the same TLV tree: same Type,
// same Value bytes (Length is derived from Value and never compared
// independently), and recursively equal SubTlvs. Equal is the basis for
// the round-trip and enrichment-round-trip property tests (spec.md §8).
func (r *RawTlv) Equal(o *RawTlv) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Type != o.Type || len(r.Value) != len(o.Value) {
		return false
	}
	for i := range r.Value {
		if r.Value[i] != o.Value[i] {
			return false
		}
	}
	if len(r.SubTlvs) != len(o.SubTlvs) {
		return false
	}
	for i := range r.SubTlvs {
		if !r.SubTlvs[i].Equal(o.SubTlvs[i]) {
			return false
		}
	}
	return true
}
