package valuecodec

import (
	"strconv"
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

// decodeOID implements the ASN.1 OBJECT IDENTIFIER wire decoding spec.md
// §4.3 describes: the first byte packs the first two arcs as
// 40*arc1+arc2, and every following arc is base-128 with the MSB as a
// continuation bit.
func decodeOID(value []byte) (string, any, error) {
	arcs, err := DecodeOIDArcs(value)
	if err != nil {
		return "", nil, err
	}
	return formatArcs(arcs), arcs, nil
}

// DecodeOIDArcs decodes the raw arc sequence without formatting it,
// exported for callers that need the arcs themselves rather than a
// dotted string.
func DecodeOIDArcs(value []byte) ([]int, error) {
	if len(value) == 0 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "empty OID encoding")
	}

	first := int(value[0])
	var arcs []int
	switch {
	case first < 40:
		arcs = []int{0, first}
	case first < 80:
		arcs = []int{1, first - 40}
	default:
		arcs = []int{2, first - 80}
	}

	acc := 0
	for i := 1; i < len(value); i++ {
		b := value[i]
		acc = acc<<7 | int(b&0x7f)
		if b&0x80 == 0 {
			arcs = append(arcs, acc)
			acc = 0
		}
	}
	return arcs, nil
}

func formatArcs(arcs []int) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ".")
}

func encodeOID(formatted string) ([]byte, error) {
	parts := strings.Split(strings.TrimSpace(formatted), ".")
	if len(parts) < 2 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "OID %q needs at least two arcs", formatted)
	}
	arcs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, bderrors.New(bderrors.KindInvalidValue, "invalid OID arc %q", p)
		}
		arcs[i] = n
	}
	return EncodeOIDArcs(arcs)
}

// EncodeOIDArcs encodes an arc sequence [a1, a2, ...] with a1 in {0,1,2}
// and, when a1 < 2, a2 in [0,39] (spec.md §8 property 7).
func EncodeOIDArcs(arcs []int) ([]byte, error) {
	if len(arcs) < 2 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "OID needs at least two arcs")
	}
	a1, a2 := arcs[0], arcs[1]
	if a1 < 0 || a1 > 2 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "OID first arc must be 0, 1, or 2, got %d", a1)
	}
	if a1 < 2 && (a2 < 0 || a2 > 39) {
		return nil, bderrors.New(bderrors.KindInvalidValue, "OID second arc must be 0-39 when first arc is 0 or 1, got %d", a2)
	}

	out := []byte{byte(40*a1 + a2)}
	for _, a := range arcs[2:] {
		out = append(out, encodeBase128(a)...)
	}
	return out, nil
}

func encodeBase128(v int) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var groups []byte
	for v > 0 {
		groups = append([]byte{byte(v & 0x7f)}, groups...)
		v >>= 7
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] |= 0x80
	}
	return groups
}
