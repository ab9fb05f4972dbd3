// Package docsis holds the data model shared by every core package: the
// raw and enriched TLV trees, the closed ValueType sum, version ordering,
// and the registry's SpecEntry record. It imports nothing from tlvcodec,
// valuecodec, registry, or enrich — they all import it.
package docsis

import (
	"fmt"
	"strings"
)

// ValueType is the closed sum of wire/human value encodings a TLV's value
// can carry. It is a string rather than an int enum so that SpecEntry
// tables and test fixtures read naturally, the way the teacher's protocol
// constants (e.g. metadata.FileType) are declared as named strings/ints
// with a String method rather than raw integers threaded through code.
type ValueType string

const (
	ValueTypeUint8           ValueType = "uint8"
	ValueTypeUint16          ValueType = "uint16"
	ValueTypeUint32          ValueType = "uint32"
	ValueTypeBoolean         ValueType = "boolean"
	ValueTypeFrequency       ValueType = "frequency"
	ValueTypeBandwidth       ValueType = "bandwidth"
	ValueTypeIPv4            ValueType = "ipv4"
	ValueTypeIPv6            ValueType = "ipv6"
	ValueTypeMACAddress      ValueType = "mac_address"
	ValueTypeVendorOUI       ValueType = "vendor_oui"
	ValueTypeDuration        ValueType = "duration"
	ValueTypePercentage      ValueType = "percentage"
	ValueTypePowerQuarterDB  ValueType = "power_quarter_db"
	ValueTypeString          ValueType = "string"
	ValueTypeBinary          ValueType = "binary"
	ValueTypeHexString       ValueType = "hex_string"
	ValueTypeServiceFlowRef  ValueType = "service_flow_ref"
	ValueTypeOID             ValueType = "oid"
	ValueTypeSNMPOID         ValueType = "snmp_oid"
	ValueTypeASN1DER         ValueType = "asn1_der"
	ValueTypeCertificate     ValueType = "certificate"
	ValueTypeTimestamp       ValueType = "timestamp"
	ValueTypeEnum            ValueType = "enum"
	ValueTypeCompound        ValueType = "compound"
	ValueTypeMarker          ValueType = "marker"
	ValueTypeVendor          ValueType = "vendor"
	ValueTypeTrafficPriority ValueType = "traffic_priority"
	ValueTypeUnknown         ValueType = "unknown"
)

// IsAtomic reports whether vt can never be reinterpreted as a compound
// node, per spec invariant 5 and the Enricher's conservatism rule (§4.7
// step 3): frequency/boolean/ipv4/ipv6/mac/duration/percentage/power are
// never downgraded into or discovered as sub-TLV trees.
func (vt ValueType) IsAtomic() bool {
	switch vt {
	case ValueTypeFrequency, ValueTypeBandwidth, ValueTypeBoolean,
		ValueTypeIPv4, ValueTypeIPv6, ValueTypeMACAddress,
		ValueTypeDuration, ValueTypePercentage, ValueTypePowerQuarterDB:
		return true
	default:
		return false
	}
}

// MaxLength expresses a SpecEntry's maximum value length: either
// unbounded, or a fixed byte count.
type MaxLength struct {
	Unbounded bool
	N         int
}

// Unbounded returns a MaxLength with no upper bound.
func Unbounded() MaxLength { return MaxLength{Unbounded: true} }

// Bounded returns a MaxLength capped at n bytes.
func Bounded(n int) MaxLength { return MaxLength{N: n} }

// Allows reports whether a value of the given byte length satisfies m.
func (m MaxLength) Allows(length int) bool {
	return m.Unbounded || length <= m.N
}

func (m MaxLength) String() string {
	if m.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", m.N)
}

// Category groups TLV types for display and for the unknown-type fallback
// (spec.md §4.4): the registry infers a Category from the numeric type
// range when no explicit entry exists.
type Category string

const (
	CategoryBasicConfiguration Category = "basic_configuration"
	CategorySecurityPrivacy    Category = "security_privacy"
	CategoryAdvancedFeatures   Category = "advanced_features"
	CategoryDocsis30           Category = "docsis_3_0"
	CategoryDocsis31           Category = "docsis_3_1"
	CategoryVendorSpecific     Category = "vendor_specific"
	CategoryUnknown            Category = "unknown"
)

// CategoryForType infers a Category purely from the numeric type range,
// used only as the unknown-entry fallback (spec.md §4.4).
func CategoryForType(t int) Category {
	switch {
	case t >= 1 && t <= 30:
		return CategoryBasicConfiguration
	case t >= 31 && t <= 42:
		return CategorySecurityPrivacy
	case t >= 43 && t <= 63:
		return CategoryAdvancedFeatures
	case t >= 64 && t <= 76:
		return CategoryDocsis30
	case t >= 77 && t <= 85:
		return CategoryDocsis31
	case t >= 200 && t <= 254:
		return CategoryVendorSpecific
	default:
		return CategoryUnknown
	}
}

// MetadataSource records which registry table, if any, supplied an
// EnrichedTlv's metadata.
type MetadataSource string

const (
	MetadataSourceDocsis MetadataSource = "docsis_specs"
	MetadataSourceMTA    MetadataSource = "mta_specs"
	MetadataSourceUnknown MetadataSource = "unknown"
)

// EnumDomain maps an enum's underlying integer values to their names.
// Lookups are exact on Resolve and case-insensitive on Reverse, per
// spec.md §4.4's registry enum rule.
type EnumDomain map[int]string

// Resolve returns the name for v, if defined.
func (d EnumDomain) Resolve(v int) (string, bool) {
	name, ok := d[v]
	return name, ok
}

// Reverse looks up the integer for name, case-insensitively.
func (d EnumDomain) Reverse(name string) (int, bool) {
	for v, n := range d {
		if strings.EqualFold(n, name) {
			return v, true
		}
	}
	return 0, false
}
