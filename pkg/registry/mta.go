package registry

import "github.com/awksedgreep/bindocsis/pkg/docsis"

// mtaTable holds the PacketCable MTA configuration file TLV dictionary,
// consulted only when Options.IncludeMTA is set (spec.md §4.4). MTA
// files reuse DOCSIS TLV type 11 (SNMP MIB Object) as their primary
// vehicle, plus a handful of PacketCable-only types in the 64-85 range
// that never appear in a plain DOCSIS modem config.
var mtaTable = map[int]docsis.SpecEntry{
	64: {
		Name: "MTA Configuration File Version", ValueType: docsis.ValueTypeUint8,
		MaxLength: docsis.Bounded(1), Category: docsis.CategoryAdvancedFeatures,
	},
	65: {
		Name: "PacketCable Provisioning Flow Log", ValueType: docsis.ValueTypeBinary,
		MaxLength: docsis.Unbounded(), Category: docsis.CategoryAdvancedFeatures,
	},
	85: {
		Name: "MTA General Purpose", ValueType: docsis.ValueTypeCompound,
		SubtlvSupport: true, MaxLength: docsis.Unbounded(),
		Category: docsis.CategoryAdvancedFeatures,
	},
}
