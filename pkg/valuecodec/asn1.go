package valuecodec

import (
	"encoding/asn1"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

// decodeASN1DERFallback renders a raw asn1_der/certificate value as its
// plain string form: hex for asn1_der, PEM for certificate. Structured SNMP MIB object decoding lives in
// DecodeASN1Object, used by the Enricher when it wants the richer
// {oid,type,value} surface (spec.md §3, end-to-end scenario 6); this
// function backs the plain-string Decode path used when that structured
// decode does not apply or is not requested.
func decodeASN1DERFallback(value []byte, vt docsis.ValueType) (string, any, error) {
	if vt == docsis.ValueTypeCertificate {
		return encodePEM(value, "CERTIFICATE"), append([]byte(nil), value...), nil
	}
	return FormatHex(value), append([]byte(nil), value...), nil
}

func encodeASN1DERString(formatted string) ([]byte, error) {
	s := strings.TrimSpace(formatted)

	if block, _ := pem.Decode([]byte(s)); block != nil {
		return block.Bytes, nil
	}
	if b, err := ParseHex(s); err == nil {
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return nil, bderrors.New(bderrors.KindInvalidValue, "cannot decode asn1_der/certificate value %q as hex, PEM, or base64", formatted)
}

func encodePEM(der []byte, blockType string) string {
	block := &pem.Block{Type: blockType, Bytes: der}
	return strings.TrimSpace(string(pem.EncodeToMemory(block)))
}

// derMibObject mirrors the DER SEQUENCE{OID, ANY} shape an SNMP MIB
// object TLV carries (spec.md §4.3, end-to-end scenario 6).
type derMibObject struct {
	OID   asn1.ObjectIdentifier
	Value asn1.RawValue
}

// DecodeASN1Object attempts to parse value as a DER SEQUENCE{OID, typed
// value} SNMP MIB object. It returns an error (not a fallback) when value
// does not decompose that way, so callers can try the structured form
// first and fall back to plain hex/PEM rendering on failure, per spec.md
// §4.7 step 5's "format via ValueCodec; failure falls back to hex" rule.
func DecodeASN1Object(value []byte) (*docsis.ASN1Object, error) {
	var obj derMibObject
	if _, err := asn1.Unmarshal(value, &obj); err != nil {
		return nil, bderrors.Wrap(bderrors.KindInvalidValue, err, "not a DER SEQUENCE{OID, value}")
	}

	typeName, decoded, err := decodeMibValue(obj.Value)
	if err != nil {
		return nil, err
	}

	return &docsis.ASN1Object{
		OID:   obj.OID.String(),
		Type:  typeName,
		Value: decoded,
	}, nil
}

func decodeMibValue(raw asn1.RawValue) (string, any, error) {
	switch raw.Tag {
	case asn1.TagInteger:
		var n *big.Int
		if _, err := asn1.Unmarshal(raw.FullBytes, &n); err != nil {
			return "", nil, bderrors.Wrap(bderrors.KindInvalidValue, err, "invalid INTEGER in MIB object")
		}
		if n.IsInt64() {
			return "INTEGER", n.Int64(), nil
		}
		return "INTEGER", n.String(), nil
	case asn1.TagOctetString:
		var s []byte
		if _, err := asn1.Unmarshal(raw.FullBytes, &s); err != nil {
			return "", nil, bderrors.Wrap(bderrors.KindInvalidValue, err, "invalid OCTET STRING in MIB object")
		}
		return "OCTET STRING", FormatHex(s), nil
	case asn1.TagIA5String, asn1.TagPrintableString, asn1.TagUTF8String:
		var s string
		if _, err := asn1.Unmarshal(raw.FullBytes, &s); err != nil {
			return "", nil, bderrors.Wrap(bderrors.KindInvalidValue, err, "invalid string in MIB object")
		}
		return "STRING", s, nil
	case asn1.TagOID:
		var oid asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(raw.FullBytes, &oid); err != nil {
			return "", nil, bderrors.Wrap(bderrors.KindInvalidValue, err, "invalid OID in MIB object")
		}
		return "OID", oid.String(), nil
	default:
		return "RAW", FormatHex(raw.Bytes), nil
	}
}

// EncodeASN1Object re-serializes a structured SNMP MIB object surface
// into its DER SEQUENCE{OID, typed value} wire form.
func EncodeASN1Object(obj *docsis.ASN1Object) ([]byte, error) {
	oid, err := parseObjectIdentifier(obj.OID)
	if err != nil {
		return nil, err
	}

	value, err := encodeMibValue(obj.Type, obj.Value)
	if err != nil {
		return nil, err
	}

	der, err := asn1.Marshal(derMibObject{OID: oid, Value: value})
	if err != nil {
		return nil, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to marshal SNMP MIB object")
	}
	return der, nil
}

func encodeMibValue(typeName string, value any) (asn1.RawValue, error) {
	switch strings.ToUpper(typeName) {
	case "INTEGER":
		n, err := toInt64(value)
		if err != nil {
			return asn1.RawValue{}, err
		}
		raw, err := asn1.Marshal(n)
		if err != nil {
			return asn1.RawValue{}, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to encode INTEGER")
		}
		return asn1.RawValue{FullBytes: raw}, nil
	case "OCTET STRING":
		s, _ := value.(string)
		b, err := ParseHex(s)
		if err != nil {
			b = []byte(s)
		}
		raw, err := asn1.Marshal(b)
		if err != nil {
			return asn1.RawValue{}, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to encode OCTET STRING")
		}
		return asn1.RawValue{FullBytes: raw}, nil
	case "STRING":
		s, _ := value.(string)
		raw, err := asn1.Marshal(s)
		if err != nil {
			return asn1.RawValue{}, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to encode string")
		}
		return asn1.RawValue{FullBytes: raw}, nil
	case "OID":
		s, _ := value.(string)
		oid, err := parseObjectIdentifier(s)
		if err != nil {
			return asn1.RawValue{}, err
		}
		raw, err := asn1.Marshal(oid)
		if err != nil {
			return asn1.RawValue{}, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to encode OID")
		}
		return asn1.RawValue{FullBytes: raw}, nil
	default:
		return asn1.RawValue{}, bderrors.New(bderrors.KindInvalidValue, "unsupported MIB value type %q", typeName)
	}
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		n, err := parseDecimal(v)
		if err != nil {
			return 0, bderrors.New(bderrors.KindInvalidValue, "invalid INTEGER value %q", v)
		}
		return n, nil
	default:
		return 0, bderrors.New(bderrors.KindInvalidValue, "unsupported INTEGER value %T", value)
	}
}

func parseDecimal(s string) (int64, error) {
	var n int64
	neg := false
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, bderrors.New(bderrors.KindInvalidValue, "empty integer")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, bderrors.New(bderrors.KindInvalidValue, "invalid integer digit %q", c)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseObjectIdentifier(dotted string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(strings.TrimSpace(dotted), ".")
	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, p := range parts {
		n, err := parseDecimal(p)
		if err != nil {
			return nil, bderrors.New(bderrors.KindInvalidValue, "invalid OID %q", dotted)
		}
		oid[i] = int(n)
	}
	return oid, nil
}
