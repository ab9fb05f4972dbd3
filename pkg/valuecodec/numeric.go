package valuecodec

import (
	"strconv"
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

func widthFor(vt docsis.ValueType) int {
	switch vt {
	case docsis.ValueTypeUint8:
		return 1
	case docsis.ValueTypeUint16:
		return 2
	default:
		return 4
	}
}

func decodeUint(value []byte, vt docsis.ValueType) (string, any, error) {
	w := widthFor(vt)
	if len(value) != w {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "%s requires %d bytes, got %d", vt, w, len(value))
	}
	v := beToUint32(value)
	return strconv.FormatUint(uint64(v), 10), v, nil
}

func encodeUint(formatted string, width int) ([]byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(formatted), 10, width*8)
	if err != nil {
		return nil, bderrors.Wrap(bderrors.KindInvalidValue, err, "invalid integer %q", formatted)
	}
	return uint32ToBE(uint32(v), width), nil
}

func beToUint32(b []byte) uint32 {
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return v
}

func uint32ToBE(v uint32, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

var booleanTrueWords = map[string]bool{
	"enabled": true, "on": true, "true": true, "yes": true, "1": true,
}
var booleanFalseWords = map[string]bool{
	"disabled": false, "off": false, "false": false, "no": false, "0": false,
}

func decodeBoolean(value []byte) (string, any, error) {
	if len(value) != 1 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "boolean requires 1 byte, got %d", len(value))
	}
	b := value[0] != 0
	if b {
		return "enabled", true, nil
	}
	return "disabled", false, nil
}

func encodeBoolean(formatted string) ([]byte, error) {
	word := strings.ToLower(strings.TrimSpace(formatted))

	if _, ok := booleanTrueWords[word]; ok {
		return []byte{0x01}, nil
	}
	if _, ok := booleanFalseWords[word]; ok {
		return []byte{0x00}, nil
	}

	// A 2-character hex byte: any non-zero value decodes to true.
	if len(word) == 2 {
		if b, err := ParseHex(word); err == nil && len(b) == 1 {
			if b[0] != 0 {
				return []byte{0x01}, nil
			}
			return []byte{0x00}, nil
		}
	}

	return nil, bderrors.New(bderrors.KindInvalidValue, "unrecognized boolean %q", formatted)
}

func decodeTrafficPriority(value []byte) (string, any, error) {
	if len(value) != 1 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "traffic_priority requires 1 byte, got %d", len(value))
	}
	if value[0] > 7 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "traffic_priority %d out of range 0-7", value[0])
	}
	return strconv.Itoa(int(value[0])), int(value[0]), nil
}

func encodeTrafficPriority(formatted string) ([]byte, error) {
	v, err := strconv.Atoi(strings.TrimSpace(formatted))
	if err != nil || v < 0 || v > 7 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "traffic priority must be 0-7, got %q", formatted)
	}
	return []byte{byte(v)}, nil
}

func decodePercentage(value []byte) (string, any, error) {
	if len(value) != 1 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "percentage requires 1 byte, got %d", len(value))
	}
	if value[0] > 100 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "percentage %d out of range 0-100", value[0])
	}
	return strconv.Itoa(int(value[0])) + "%", int(value[0]), nil
}

func encodePercentage(formatted string) ([]byte, error) {
	s := strings.TrimSpace(formatted)
	switch {
	case strings.HasSuffix(s, "%"):
		v, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "%")))
		if err != nil || v < 0 || v > 100 {
			return nil, bderrors.New(bderrors.KindInvalidValue, "invalid percentage %q", formatted)
		}
		return []byte{byte(v)}, nil
	case strings.Contains(s, "."):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 || f > 1 {
			return nil, bderrors.New(bderrors.KindInvalidValue, "invalid percentage fraction %q", formatted)
		}
		return []byte{byte(f*100 + 0.5)}, nil
	default:
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 100 {
			return nil, bderrors.New(bderrors.KindInvalidValue, "invalid percentage %q", formatted)
		}
		return []byte{byte(v)}, nil
	}
}

// decodePower renders quarter-dB power. A 1-byte value is a signed range
// -32.00..+31.75 dBmV (spec.md §4.3); a 4-byte value is an unsigned
// extended-power quarter-dB count.
func decodePower(value []byte) (string, any, error) {
	switch len(value) {
	case 1:
		q := int8(value[0])
		return formatQuarterDB(int(q)), int(q), nil
	case 4:
		q := int(beToUint32(value))
		return formatQuarterDB(q), q, nil
	default:
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "power_quarter_db requires 1 or 4 bytes, got %d", len(value))
	}
}

func formatQuarterDB(quarters int) string {
	whole := quarters / 4
	frac := quarters % 4
	if frac < 0 {
		frac += 4
		whole--
	}
	return strconv.Itoa(whole) + "." + [4]string{"00", "25", "50", "75"}[frac] + " dBmV"
}

func encodePower(formatted string) ([]byte, error) {
	s := strings.TrimSpace(formatted)
	s = strings.TrimSuffix(strings.TrimSpace(s), "dBmV")
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, bderrors.New(bderrors.KindInvalidValue, "invalid power value %q", formatted)
	}
	quarters := int(f*4 + sign(f)*0.5)
	if quarters >= -128 && quarters <= 127 {
		return []byte{byte(int8(quarters))}, nil
	}
	return uint32ToBE(uint32(int32(quarters)), 4), nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
