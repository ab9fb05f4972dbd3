package valuecodec

import (
	"strconv"
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

func decodeString(value []byte, p Params) (string, any, error) {
	trimmed := value
	if n := len(trimmed); n > 0 && trimmed[n-1] == 0 {
		trimmed = trimmed[:n-1]
	}
	s := string(trimmed)
	if needsQuoting(s) {
		return strconv.Quote(s), s, nil
	}
	return s, s, nil
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '"' || r < 0x20 {
			return true
		}
	}
	return false
}

// encodeString implements spec.md §4.3's :string ambiguity rule: hex is
// only attempted when the input is even-length and hex-like; otherwise it
// is taken as literal text. Strict mode disables the hex shortcut and
// always encodes literally, since the ambiguity is resolved in favor of
// the declared type rather than a heuristic (spec.md §9).
func encodeString(formatted string, p Params) ([]byte, error) {
	s := formatted
	if strconv.CanBackquote(s) {
		if unquoted, err := strconv.Unquote(s); err == nil {
			s = unquoted
		}
	}

	if !p.Strict && IsHexLike(s) && len(s) > 0 {
		if b, err := ParseHex(s); err == nil {
			return b, nil
		}
	}

	return []byte(s), nil
}

func decodeServiceFlowRef(value []byte) (string, any, error) {
	if len(value) != 2 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "service_flow_ref requires 2 bytes, got %d", len(value))
	}
	n := int(value[0])<<8 | int(value[1])
	return "Service Flow #" + strconv.Itoa(n), n, nil
}

func encodeServiceFlowRef(formatted string) ([]byte, error) {
	s := strings.TrimSpace(formatted)
	s = strings.TrimPrefix(s, "Service Flow #")
	s = strings.TrimPrefix(s, "service flow #")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 0xffff {
		return nil, bderrors.New(bderrors.KindInvalidValue, "invalid service flow reference %q", formatted)
	}
	return uint32ToBE(uint32(n), 2), nil
}

func encodeBinary(formatted string, p Params) ([]byte, error) {
	if b, err := ParseHex(formatted); err == nil {
		return b, nil
	} else if p.Strict {
		return nil, err
	}
	// Lenient mode: fall through to a literal-byte interpretation for
	// "reasonable" printable input (spec.md §4.3).
	if isPrintable(formatted) {
		return []byte(formatted), nil
	}
	return nil, bderrors.New(bderrors.KindInvalidValue, "cannot interpret %q as binary", formatted)
}

func isPrintable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}
