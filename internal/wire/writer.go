package wire

import "github.com/awksedgreep/bindocsis/pkg/bderrors"

// Writer accumulates output bytes into a single growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize returns an empty Writer with buf pre-sized for size bytes.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// Write appends b in full.
func (w *Writer) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteUint appends v as a big-endian integer occupying width bytes. width
// must be 1, 2, or 4; any other value is a programmer error, not a
// boundary error, since it never originates from untrusted input.
func (w *Writer) WriteUint(v uint64, width int) error {
	switch width {
	case 1:
		w.WriteByte(byte(v))
	case 2:
		w.WriteByte(byte(v >> 8))
		w.WriteByte(byte(v))
	case 4:
		w.WriteByte(byte(v >> 24))
		w.WriteByte(byte(v >> 16))
		w.WriteByte(byte(v >> 8))
		w.WriteByte(byte(v))
	default:
		return bderrors.New(bderrors.KindInvalidStructure, "unsupported integer width %d", width)
	}
	return nil
}

// Bytes returns the accumulated output. The returned slice aliases the
// writer's internal buffer.
func (w *Writer) Bytes() []byte {
	if w.buf == nil {
		return []byte{}
	}
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}
