package docsis

// EnrichedTlv is a RawTlv annotated with registry metadata and a
// human-readable rendering of its value (spec.md §3). FormattedValue
// holds the string rendering for every leaf ValueType except
// ValueTypeASN1DER, where a structured SNMP MIB object may instead be
// carried in StructuredValue (the "structured ASN.1 case" spec.md §3
// calls out); surface codecs check StructuredValue first.
type EnrichedTlv struct {
	Type    byte
	Length  int
	Value   []byte
	SubTlvs []*EnrichedTlv

	Name              string
	Description       string
	ValueType         ValueType
	IntroducedVersion Version
	Category          Category
	MaxLength         MaxLength
	SubtlvSupport     bool
	MetadataSource    MetadataSource

	FormattedValue   string
	StructuredValue  *ASN1Object // non-nil only for structured asn1_der leaves
	RawValue         any        // decoded native form (uint32, net.IP, time.Time, ...), when applicable
}

// ASN1Object is the structured surface form of an SNMP MIB object carried
// in an asn1_der TLV: a DER SEQUENCE{OID, typed value}. See spec.md §4.3
// and end-to-end scenario 6.
type ASN1Object struct {
	OID   string
	Type  string // e.g. "INTEGER", "OCTET STRING", "Counter32"
	Value any
}

// IsCompound reports whether e was enriched as a compound node.
func (e *EnrichedTlv) IsCompound() bool {
	return e.ValueType == ValueTypeCompound
}
