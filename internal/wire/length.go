package wire

import "github.com/awksedgreep/bindocsis/pkg/bderrors"

// maxLength is the largest length value the BER-style encoding can express
// (2^32 - 1, encoded via the 4-byte long form).
const maxLength = 1<<32 - 1

// DecodeLength reads a BER-style length from r: a single byte for values
// <= 127, or a long form 0x8N followed by N big-endian length bytes, where
// N is 1, 2, or 4.
func DecodeLength(r *Reader) (int, error) {
	b, err := r.TakeByte()
	if err != nil {
		return 0, err
	}
	if b < 0x80 {
		return int(b), nil
	}

	n := int(b &^ 0x80)
	switch n {
	case 1, 2, 4:
		rest, err := r.Take(n)
		if err != nil {
			return 0, err
		}
		var length uint32
		for _, rb := range rest {
			length = length<<8 | uint32(rb)
		}
		return int(length), nil
	default:
		return 0, bderrors.New(bderrors.KindInvalidLength,
			"unsupported long-form length prefix 0x%02x", b)
	}
}

// EncodeLength appends the shortest BER-style encoding of length to w.
func EncodeLength(w *Writer, length int) error {
	switch {
	case length < 0 || length > maxLength:
		return bderrors.New(bderrors.KindInvalidLength, "length %d out of range", length)
	case length <= 0x7f:
		w.WriteByte(byte(length))
	case length <= 0xff:
		w.WriteByte(0x81)
		return w.WriteUint(uint64(length), 1)
	case length <= 0xffff:
		w.WriteByte(0x82)
		return w.WriteUint(uint64(length), 2)
	default:
		w.WriteByte(0x84)
		return w.WriteUint(uint64(length), 4)
	}
	return nil
}
