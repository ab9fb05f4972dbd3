package valuecodec

import (
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

// ParseHex parses s as hex pairs, tolerating the separators the binary
// value grammar accepts: whitespace, ':' and '-', and an optional
// "NNNN:" hex-dump offset prefix per line (spec.md §4.3's :binary strict
// mode).
func ParseHex(s string) ([]byte, error) {
	cleaned := stripHexDumpPrefixes(s)
	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', '-':
			return -1
		}
		return r
	}, cleaned)

	if len(cleaned)%2 != 0 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "odd-length hex string %q", s)
	}

	out := make([]byte, len(cleaned)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexVal(cleaned[i*2])
		lo, ok2 := hexVal(cleaned[i*2+1])
		if !ok1 || !ok2 {
			return nil, bderrors.New(bderrors.KindInvalidValue, "invalid hex digit in %q", s)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// IsHexLike reports whether s looks like a hex string: even length after
// stripping separators, and every remaining rune a hex digit. Used by the
// :string codec to decide whether to attempt a hex decode before falling
// back to literal bytes (spec.md §4.3).
func IsHexLike(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', '-':
			return -1
		}
		return r
	}, s)
	if cleaned == "" || len(cleaned)%2 != 0 {
		return false
	}
	for _, r := range cleaned {
		if _, ok := hexVal(byte(r)); !ok {
			return false
		}
	}
	return true
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// stripHexDumpPrefixes removes leading "NNNN:" offset labels from each
// line of a hex-dump-style input (e.g. "0000: AA BB CC").
func stripHexDumpPrefixes(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if idx := strings.Index(trimmed, ":"); idx > 0 {
			prefix := trimmed[:idx]
			// Only a 4-digit "NNNN:" offset label counts as a hex-dump
			// prefix; anything shorter (e.g. "AA:") is a byte separator
			// in an ordinary colon-delimited hex string.
			if len(prefix) == 4 && isAllHex(prefix) {
				lines[i] = trimmed[idx+1:]
				continue
			}
		}
		lines[i] = trimmed
	}
	return strings.Join(lines, " ")
}

func isAllHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexVal(s[i]); !ok {
			return false
		}
	}
	return true
}
