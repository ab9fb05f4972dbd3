package valuecodec

import (
	"fmt"
	"net"
	"strings"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

func decodeIPv4(value []byte) (string, any, error) {
	if len(value) != 4 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "ipv4 requires 4 bytes, got %d", len(value))
	}
	ip := net.IPv4(value[0], value[1], value[2], value[3])
	return ip.String(), ip, nil
}

func encodeIPv4(formatted string) ([]byte, error) {
	ip := net.ParseIP(strings.TrimSpace(formatted))
	v4 := ip.To4()
	if v4 == nil {
		return nil, bderrors.New(bderrors.KindInvalidValue, "invalid IPv4 address %q", formatted)
	}
	return []byte(v4), nil
}

func decodeIPv6(value []byte) (string, any, error) {
	if len(value) != 16 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "ipv6 requires 16 bytes, got %d", len(value))
	}
	ip := net.IP(append([]byte(nil), value...))
	return ip.String(), ip, nil
}

func encodeIPv6(formatted string) ([]byte, error) {
	ip := net.ParseIP(strings.TrimSpace(formatted))
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return nil, bderrors.New(bderrors.KindInvalidValue, "invalid IPv6 address %q", formatted)
	}
	return []byte(v6), nil
}

func decodeMAC(value []byte) (string, any, error) {
	if len(value) != 6 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "mac_address requires 6 bytes, got %d", len(value))
	}
	mac := net.HardwareAddr(append([]byte(nil), value...))
	return mac.String(), mac, nil
}

func encodeMAC(formatted string) ([]byte, error) {
	s := strings.TrimSpace(formatted)
	if s == "-" {
		return nil, bderrors.New(bderrors.KindInvalidValue, "empty MAC address placeholder %q cannot be encoded", formatted)
	}
	// net.ParseMAC requires separators; fall back to a bare hex parse
	// (12 hex digits, no separators).
	if mac, err := net.ParseMAC(s); err == nil {
		return []byte(mac), nil
	}
	b, err := ParseHex(s)
	if err != nil || len(b) != 6 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "invalid MAC address %q", formatted)
	}
	return b, nil
}

func decodeOUI(value []byte) (string, any, error) {
	if len(value) != 3 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "vendor_oui requires 3 bytes, got %d", len(value))
	}
	return fmt.Sprintf("%02x:%02x:%02x", value[0], value[1], value[2]), append([]byte(nil), value...), nil
}

func encodeOUI(formatted string) ([]byte, error) {
	b, err := ParseHex(strings.TrimSpace(formatted))
	if err != nil || len(b) != 3 {
		return nil, bderrors.New(bderrors.KindInvalidValue, "invalid vendor OUI %q", formatted)
	}
	return b, nil
}

// vendorPayload is the structured form a vendor TLV decodes to: a 3-byte
// OUI and the opaque data that follows it.
type vendorPayload struct {
	OUI  string
	Data string
}

func decodeVendor(value []byte) (string, any, error) {
	if len(value) < 3 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "vendor requires at least 3 bytes, got %d", len(value))
	}
	oui := fmt.Sprintf("%02X:%02X:%02X", value[0], value[1], value[2])
	data := FormatHex(value[3:])
	return FormatHex(value), vendorPayload{OUI: oui, Data: data}, nil
}

func encodeVendor(formatted string) ([]byte, error) {
	return ParseHex(formatted)
}
