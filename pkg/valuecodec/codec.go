// Package valuecodec implements the bidirectional map between each
// docsis.ValueType and its wire (binary) and human (string) forms,
// spec.md §4.3. Every Decode is total: if a typed decoder fails, it falls
// back to the generic hex_string rendering rather than erroring, so the
// Enricher never has to special-case a formatting failure (spec.md §4.7
// step 5).
package valuecodec

import (
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

// Params carries everything a single Encode/Decode call needs beyond the
// bytes or string themselves: the enum domain for ValueTypeEnum, the
// underlying integer width for enums, and the strict/lenient switch for
// the :binary and :string ambiguity (spec.md §4.3, §9).
type Params struct {
	EnumDomain docsis.EnumDomain
	EnumWidth  int  // defaults to 1 when zero
	Strict     bool // strict mode for binary/string hex-vs-literal disambiguation
}

func (p Params) enumWidth() int {
	if p.EnumWidth <= 0 {
		return 1
	}
	return p.EnumWidth
}

// Decode renders value (wire bytes) as a human string, and, where a
// native Go representation makes sense, a raw decoded value. It never
// returns an error for a well-formed ValueType: callers that need strict
// validation should use the typed Decode* functions directly.
func Decode(vt docsis.ValueType, value []byte, p Params) (formatted string, raw any, err error) {
	formatted, raw, err = decodeTyped(vt, value, p)
	if err != nil {
		return FormatHex(value), nil, nil //nolint:nilerr // total decode: fall back to hex, per spec.md §4.7 step 5
	}
	return formatted, raw, nil
}

func decodeTyped(vt docsis.ValueType, value []byte, p Params) (string, any, error) {
	switch vt {
	case docsis.ValueTypeUint8, docsis.ValueTypeUint16, docsis.ValueTypeUint32:
		return decodeUint(value, vt)
	case docsis.ValueTypeBoolean:
		return decodeBoolean(value)
	case docsis.ValueTypeTrafficPriority:
		return decodeTrafficPriority(value)
	case docsis.ValueTypePercentage:
		return decodePercentage(value)
	case docsis.ValueTypePowerQuarterDB:
		return decodePower(value)
	case docsis.ValueTypeFrequency:
		return decodeFrequency(value)
	case docsis.ValueTypeBandwidth:
		return decodeBandwidth(value)
	case docsis.ValueTypeDuration:
		return decodeDuration(value)
	case docsis.ValueTypeTimestamp:
		return decodeTimestamp(value)
	case docsis.ValueTypeIPv4:
		return decodeIPv4(value)
	case docsis.ValueTypeIPv6:
		return decodeIPv6(value)
	case docsis.ValueTypeMACAddress:
		return decodeMAC(value)
	case docsis.ValueTypeVendorOUI:
		return decodeOUI(value)
	case docsis.ValueTypeVendor:
		return decodeVendor(value)
	case docsis.ValueTypeServiceFlowRef:
		return decodeServiceFlowRef(value)
	case docsis.ValueTypeEnum:
		return decodeEnum(value, p)
	case docsis.ValueTypeString:
		return decodeString(value, p)
	case docsis.ValueTypeBinary, docsis.ValueTypeHexString:
		return FormatHex(value), value, nil
	case docsis.ValueTypeOID, docsis.ValueTypeSNMPOID:
		return decodeOID(value)
	case docsis.ValueTypeASN1DER, docsis.ValueTypeCertificate:
		return decodeASN1DERFallback(value, vt)
	case docsis.ValueTypeMarker:
		return "", nil, nil
	default:
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "no decoder for value type %q", vt)
	}
}

// Encode parses a human string (or, for structured ASN.1, use
// EncodeASN1Object instead) back into wire bytes.
func Encode(vt docsis.ValueType, formatted string, p Params) ([]byte, error) {
	switch vt {
	case docsis.ValueTypeUint8:
		return encodeUint(formatted, 1)
	case docsis.ValueTypeUint16:
		return encodeUint(formatted, 2)
	case docsis.ValueTypeUint32:
		return encodeUint(formatted, 4)
	case docsis.ValueTypeBoolean:
		return encodeBoolean(formatted)
	case docsis.ValueTypeTrafficPriority:
		return encodeTrafficPriority(formatted)
	case docsis.ValueTypePercentage:
		return encodePercentage(formatted)
	case docsis.ValueTypePowerQuarterDB:
		return encodePower(formatted)
	case docsis.ValueTypeFrequency:
		return encodeFrequency(formatted)
	case docsis.ValueTypeBandwidth:
		return encodeBandwidth(formatted)
	case docsis.ValueTypeDuration:
		return encodeDuration(formatted)
	case docsis.ValueTypeTimestamp:
		return encodeTimestamp(formatted)
	case docsis.ValueTypeIPv4:
		return encodeIPv4(formatted)
	case docsis.ValueTypeIPv6:
		return encodeIPv6(formatted)
	case docsis.ValueTypeMACAddress:
		return encodeMAC(formatted)
	case docsis.ValueTypeVendorOUI:
		return encodeOUI(formatted)
	case docsis.ValueTypeVendor:
		return encodeVendor(formatted)
	case docsis.ValueTypeServiceFlowRef:
		return encodeServiceFlowRef(formatted)
	case docsis.ValueTypeEnum:
		return encodeEnum(formatted, p)
	case docsis.ValueTypeString:
		return encodeString(formatted, p)
	case docsis.ValueTypeBinary:
		return encodeBinary(formatted, p)
	case docsis.ValueTypeHexString:
		return ParseHex(formatted)
	case docsis.ValueTypeOID, docsis.ValueTypeSNMPOID:
		return encodeOID(formatted)
	case docsis.ValueTypeASN1DER, docsis.ValueTypeCertificate:
		return encodeASN1DERString(formatted)
	case docsis.ValueTypeMarker:
		return []byte{}, nil
	default:
		return nil, bderrors.New(bderrors.KindInvalidValue, "no encoder for value type %q", vt)
	}
}

// FormatHex renders b as space-separated uppercase hex pairs, the
// universal fallback rendering (spec.md §3, `binary`/`hex_string` row).
func FormatHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, x := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeHexByte(&sb, x)
	}
	return sb.String()
}

const hexDigits = "0123456789ABCDEF"

func writeHexByte(sb *strings.Builder, b byte) {
	sb.WriteByte(hexDigits[b>>4])
	sb.WriteByte(hexDigits[b&0x0f])
}
