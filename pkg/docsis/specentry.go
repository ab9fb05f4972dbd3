package docsis

// SpecEntry is the registry's metadata record for a single (context,
// type) pair: everything the Enricher needs to annotate a RawTlv without
// consulting anything else.
type SpecEntry struct {
	Name              string
	Description       string
	ValueType         ValueType
	MaxLength         MaxLength
	IntroducedVersion Version
	SubtlvSupport     bool
	Category          Category
	MetadataSource    MetadataSource

	// EnumDomain and EnumWidth are set only when ValueType is
	// ValueTypeEnum: the integer->name mapping and the underlying wire
	// width in bytes (defaults to 1 when zero).
	EnumDomain EnumDomain
	EnumWidth  int

	// SubtlvSchemaRef labels the sub-TLV dictionary this entry's children
	// belong to (e.g. the legacy TLV 17/18 and QoS TLV 24/25 service-flow
	// dictionaries, spec.md §9). It is descriptive only: Registry resolves
	// children by context path and parent type and does not read it.
	SubtlvSchemaRef string
}

// Unknown returns the fallback SpecEntry for a type the registry has no
// record of (spec.md invariant 4: lookup is total). Types in the
// vendor-specific range (200-254) default to ValueTypeVendor rather than
// ValueTypeUnknown, per spec.md end-to-end scenario 4: an unrecognized
// vendor TLV renders as opaque hex under value_type "vendor", not as a
// speculative compound-discovery candidate.
func Unknown(typ int) SpecEntry {
	category := CategoryForType(typ)
	valueType := ValueTypeUnknown
	if category == CategoryVendorSpecific {
		valueType = ValueTypeVendor
	}
	return SpecEntry{
		Name:           "Unknown",
		Description:    "No specification entry for this type",
		ValueType:      valueType,
		MaxLength:      Unbounded(),
		SubtlvSupport:  false,
		Category:       category,
		MetadataSource: MetadataSourceUnknown,
	}
}
