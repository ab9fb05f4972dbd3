// Package tlvcodec implements the structural (type, length, value) parser
// and serializer: spec.md §4.5–§4.6. It knows nothing about TLV
// semantics — no registry lookups, no value interpretation, no sub-TLV
// discovery. That is the enrich package's job, layered on top.
package tlvcodec

import (
	"github.com/awksedgreep/bindocsis/internal/wire"
	"github.com/awksedgreep/bindocsis/pkg/bderrors"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

// EndOfDataMarker is the reserved top-level type (255) signaling the end
// of the TLV stream.
const EndOfDataMarker = 255

// ParseOptions controls Parse's top-level behavior.
type ParseOptions struct {
	// ParsePastMarker, when true, keeps decoding TLVs after a type-255
	// marker instead of stopping at it (spec.md §4.5 step 1).
	ParsePastMarker bool
}

// SerializeOptions controls Serialize's top-level behavior.
type SerializeOptions struct {
	// Terminate appends a type-255, length-0 marker TLV after the given
	// sequence (spec.md §4.6).
	Terminate bool
}

// Parse decodes buf into a flat, ordered sequence of RawTlvs. It never
// recurses into a TLV's value: sub-TLV decomposition belongs to the
// Enricher (spec.md §4.5 step 4).
func Parse(buf []byte, opts ParseOptions) ([]*docsis.RawTlv, error) {
	r := wire.NewReader(buf)
	ctx := bderrors.ParseContext{Format: "binary"}
	var out []*docsis.RawTlv

	for !r.Done() {
		offset := r.Offset()
		typ, err := r.TakeByte()
		if err != nil {
			return nil, ctx.AtOffset(offset).Annotate(err)
		}

		if typ == EndOfDataMarker {
			out = append(out, &docsis.RawTlv{Type: EndOfDataMarker, Length: 0, Value: []byte{}})
			if !opts.ParsePastMarker {
				break
			}
			continue
		}

		tlvCtx := ctx.Push(int(typ))

		lengthOffset := r.Offset()
		length, err := wire.DecodeLength(r)
		if err != nil {
			return nil, tlvCtx.AtOffset(lengthOffset).Annotate(err)
		}

		valueOffset := r.Offset()
		if r.Remaining() < length {
			return nil, tlvCtx.AtOffset(valueOffset).Annotate(bderrors.New(bderrors.KindTruncatedTLV,
				"TLV type %d claims length %d but only %d bytes remain", typ, length, r.Remaining()))
		}
		value, err := r.Take(length)
		if err != nil {
			return nil, tlvCtx.AtOffset(valueOffset).Annotate(err)
		}

		// Take returns a slice aliasing the input buffer; copy it so the
		// RawTlv tree outlives mutation of (or aliasing with) buf.
		owned := make([]byte, len(value))
		copy(owned, value)

		out = append(out, &docsis.RawTlv{Type: typ, Length: length, Value: owned})
	}

	return out, nil
}

// Serialize encodes tlvs in order into wire bytes. For any TLV whose Value
// is nil but SubTlvs is non-empty, Serialize first recursively serializes
// the children to produce Value, then recomputes Length from the result
// (spec.md §4.8's Un-enricher flattening step, folded into this single
// entry point so callers never have to sequence the two themselves).
func Serialize(tlvs []*docsis.RawTlv, opts SerializeOptions) ([]byte, error) {
	w := wire.NewWriterSize(estimateSize(tlvs))

	for _, t := range tlvs {
		// An end-of-data marker is the bare type byte, exactly as Parse
		// reads it, so serialize(parse(b)) == b holds for marker streams.
		if t.Type == EndOfDataMarker {
			w.WriteByte(EndOfDataMarker)
			continue
		}
		value := t.Value
		if value == nil && t.IsCompound() {
			flattened, err := Serialize(t.SubTlvs, SerializeOptions{})
			if err != nil {
				return nil, err
			}
			value = flattened
		}
		if value == nil {
			value = []byte{}
		}

		w.WriteByte(t.Type)
		if err := wire.EncodeLength(w, len(value)); err != nil {
			return nil, err
		}
		w.Write(value)
	}

	if opts.Terminate {
		w.WriteByte(EndOfDataMarker)
		if err := wire.EncodeLength(w, 0); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

func estimateSize(tlvs []*docsis.RawTlv) int {
	n := 0
	for _, t := range tlvs {
		n += 2 + len(t.Value)
	}
	return n
}
