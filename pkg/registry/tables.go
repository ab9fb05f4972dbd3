package registry

import "github.com/awksedgreep/bindocsis/pkg/docsis"

// topLevelTable holds the top-level DOCSIS TLV specs, keyed by type. A
// handful of well-known entries are modeled in depth; everything else
// falls through to the Unknown fallback (spec.md §4.4).
var topLevelTable = map[int]docsis.SpecEntry{
	1: {
		Name: "Downstream Frequency", ValueType: docsis.ValueTypeFrequency,
		MaxLength: docsis.Bounded(4), IntroducedVersion: docsis.Version1_0,
		Category: docsis.CategoryBasicConfiguration,
	},
	2: {
		Name: "Upstream Channel ID", ValueType: docsis.ValueTypeUint8,
		MaxLength: docsis.Bounded(1), IntroducedVersion: docsis.Version1_0,
		Category: docsis.CategoryBasicConfiguration,
	},
	3: {
		Name: "Network Access Control", ValueType: docsis.ValueTypeBoolean,
		MaxLength: docsis.Bounded(1), IntroducedVersion: docsis.Version1_0,
		Category: docsis.CategoryBasicConfiguration,
	},
	4: {
		Name: "Class of Service", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "class_of_service",
	},
	6: {
		Name: "CM MIC", Description: "Cable modem message integrity check; preserved, never computed by this library",
		ValueType: docsis.ValueTypeBinary, MaxLength: docsis.Bounded(16),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategorySecurityPrivacy,
	},
	7: {
		Name: "CMTS MIC", Description: "CMTS message integrity check; preserved, never computed by this library",
		ValueType: docsis.ValueTypeBinary, MaxLength: docsis.Bounded(16),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategorySecurityPrivacy,
	},
	11: {
		Name: "SNMP MIB Object", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "snmp_mib_object",
	},
	12: {
		Name: "Client IP Address", ValueType: docsis.ValueTypeIPv4,
		MaxLength: docsis.Bounded(4), IntroducedVersion: docsis.Version1_0,
		Category: docsis.CategoryBasicConfiguration,
	},
	17: {
		Name: "Upstream Service Flow (legacy)", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "service_flow_legacy",
	},
	18: {
		Name: "Downstream Service Flow (legacy)", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "service_flow_legacy",
	},
	21: {
		Name: "Upstream Packet Classification", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_1, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "packet_classification",
	},
	22: {
		Name: "Upstream Packet Classification Encoding", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_1, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "packet_classification_encoding",
	},
	23: {
		Name: "Downstream Packet Classification Encoding", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_1, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "packet_classification_encoding",
	},
	24: {
		Name: "Upstream Service Flow (QoS)", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_1, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "service_flow_qos",
	},
	25: {
		Name: "Downstream Service Flow (QoS)", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_1, Category: docsis.CategoryBasicConfiguration,
		SubtlvSchemaRef: "service_flow_qos",
	},
	43: {
		Name: "Vendor Specific Extensions", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version1_0, Category: docsis.CategoryAdvancedFeatures,
		SubtlvSchemaRef: "vendor_specific",
	},
	64: {
		Name: "DOCSIS 3.0 Downstream Channel List", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version3_0, Category: docsis.CategoryDocsis30,
	},
	77: {
		Name: "DOCSIS 3.1 DS OFDM Profile", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		IntroducedVersion: docsis.Version3_1, Category: docsis.CategoryDocsis31,
	},
}

// subtlvTables holds per-parent-type sub-TLV dictionaries, used when no
// more specific context-path dialect applies.
var subtlvTables = map[int]map[int]docsis.SpecEntry{
	4: { // Class of Service (legacy)
		1: {Name: "Class ID", ValueType: docsis.ValueTypeUint8, MaxLength: docsis.Bounded(1)},
		2: {Name: "Max Downstream Rate", ValueType: docsis.ValueTypeBandwidth, MaxLength: docsis.Bounded(4)},
		3: {Name: "Max Upstream Rate", ValueType: docsis.ValueTypeBandwidth, MaxLength: docsis.Bounded(4)},
	},
	21: {
		1: {Name: "Classifier Reference", ValueType: docsis.ValueTypeUint8, MaxLength: docsis.Bounded(1)},
		2: {Name: "Classifier Identifier", ValueType: docsis.ValueTypeUint16, MaxLength: docsis.Bounded(2)},
		6: {Name: "Service Flow Reference", ValueType: docsis.ValueTypeServiceFlowRef, MaxLength: docsis.Bounded(2)},
	},
	17: { // service_flow_legacy dictionary
		1: {Name: "Service Flow Reference", ValueType: docsis.ValueTypeServiceFlowRef, MaxLength: docsis.Bounded(2)},
		6: {Name: "QoS Parameter Set Type (legacy)", ValueType: docsis.ValueTypeUint8, MaxLength: docsis.Bounded(1)},
	},
	18: {
		1: {Name: "Service Flow Reference", ValueType: docsis.ValueTypeServiceFlowRef, MaxLength: docsis.Bounded(2)},
		6: {Name: "QoS Parameter Set Type (legacy)", ValueType: docsis.ValueTypeUint8, MaxLength: docsis.Bounded(1)},
	},
	24: { // service_flow_qos dictionary -- distinct from service_flow_legacy
		1: {Name: "QoS Service Flow Reference", ValueType: docsis.ValueTypeUint16, MaxLength: docsis.Bounded(2)},
		6: {Name: "QoS Parameter Set Type", ValueType: docsis.ValueTypeEnum, MaxLength: docsis.Bounded(1),
			EnumDomain: docsis.EnumDomain{1: "provisioned", 2: "admitted", 4: "active"}},
	},
	25: {
		1: {Name: "QoS Service Flow Reference", ValueType: docsis.ValueTypeUint16, MaxLength: docsis.Bounded(2)},
		6: {Name: "QoS Parameter Set Type", ValueType: docsis.ValueTypeEnum, MaxLength: docsis.Bounded(1),
			EnumDomain: docsis.EnumDomain{1: "provisioned", 2: "admitted", 4: "active"}},
	},
	43: { // vendor_specific dictionary
		8: {Name: "Vendor Identifier", ValueType: docsis.ValueTypeVendorOUI, MaxLength: docsis.Bounded(3)},
		// Open question (spec.md §9): IP multicast join/leave
		// authorization sub-TLVs oscillate between compound and binary
		// in the source material. The conservative reading wins: binary
		// with a hex formatted-value fallback, never silently compound.
		10: {Name: "IP Multicast Join Authorization", ValueType: docsis.ValueTypeBinary, MaxLength: docsis.Unbounded()},
		11: {Name: "IP Multicast Leave Authorization", ValueType: docsis.ValueTypeBinary, MaxLength: docsis.Unbounded()},
	},
	11: { // snmp_mib_object dictionary
		48: {Name: "SNMP Object Value", ValueType: docsis.ValueTypeASN1DER, MaxLength: docsis.Unbounded()},
	},
}

// contextPathTables holds dialect-specific schemas keyed by an exact
// context path, for dialects that differ from the per-parent default
// (spec.md §4.4's L2VPN inner-tree example).
var contextPathTables = map[string]map[int]docsis.SpecEntry{
	docsis.ContextPath{22, 43}.String(): {
		5: {Name: "L2VPN Encoding", ValueType: docsis.ValueTypeCompound, SubtlvSupport: true, MaxLength: docsis.Unbounded()},
	},
	docsis.ContextPath{22, 43, 5}.String(): {
		2: {Name: "Service Multiplexing", ValueType: docsis.ValueTypeCompound, SubtlvSupport: true, MaxLength: docsis.Unbounded()},
	},
	docsis.ContextPath{22, 43, 5, 2}.String(): {
		4: {Name: "MPLS Service Multiplexing Value", ValueType: docsis.ValueTypeUint32, MaxLength: docsis.Bounded(4)},
	},
}
