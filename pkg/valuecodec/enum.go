package valuecodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

func decodeEnum(value []byte, p Params) (string, any, error) {
	w := p.enumWidth()
	if len(value) != w {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "enum requires %d bytes, got %d", w, len(value))
	}
	v := int(beToUint32(value))
	if name, ok := p.EnumDomain.Resolve(v); ok {
		return name, v, nil
	}
	return fmt.Sprintf("%d (unknown)", v), v, nil
}

func encodeEnum(formatted string, p Params) ([]byte, error) {
	w := p.enumWidth()
	s := strings.TrimSpace(formatted)

	// "N (unknown)" / "N (Unknown enum value)" round-trips to the bare N.
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		if n, err := strconv.Atoi(s[:idx]); err == nil {
			return uint32ToBE(uint32(n), w), nil
		}
	}

	if v, ok := p.EnumDomain.Reverse(s); ok {
		return uint32ToBE(uint32(v), w), nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return uint32ToBE(uint32(n), w), nil
	}

	return nil, bderrors.New(bderrors.KindInvalidValue, "unrecognized enum value %q", formatted)
}
