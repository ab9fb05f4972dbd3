// Package wire implements the cursor-style binary primitives the rest of
// the codec builds on: a byte-slice reader and writer, and the DOCSIS
// BER-style length encoding. It performs no interpretation of TLV
// semantics — that is tlvcodec's and valuecodec's job.
package wire

import (
	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

// Reader is a cursor over an input byte slice. It never copies the
// underlying buffer; slices it returns borrow from it.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the reader's current position.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Done reports whether the reader has no unread bytes left.
func (r *Reader) Done() bool {
	return r.Remaining() <= 0
}

// Take consumes and returns the next n bytes. The returned slice aliases
// the reader's backing buffer; callers that retain it across further
// reads should copy it.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, bderrors.New(bderrors.KindUnexpectedEOF,
			"expected %d bytes, got %d", n, r.Remaining())
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// TakeByte consumes and returns the next single byte.
func (r *Reader) TakeByte() (byte, error) {
	b, err := r.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Peek returns the next n bytes without advancing the cursor.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, bderrors.New(bderrors.KindUnexpectedEOF,
			"expected %d bytes, got %d", n, r.Remaining())
	}
	return r.buf[r.pos : r.pos+n], nil
}
