// Package bderrors defines the error taxonomy shared by every core package:
// a closed set of error Kinds (the fine-grained failure reasons a decoder or
// encoder can hit) and BoundaryType (the coarse classification exposed at a
// public function's result, per the wire-format specification's external
// error model).
//
// BindError is the single error type the core returns. It carries enough
// context (byte offset, enclosing TLV path) for a caller to produce a
// useful diagnostic without the core performing any formatting itself.
package bderrors

import (
	"errors"
	"fmt"
)

// Kind is a fine-grained, stable failure reason. Kinds are recoverable or
// fatal depending on where they occur: UnknownTLV, for instance, never
// fails a parse (the registry falls back to an unknown SpecEntry), while
// TruncatedTLV always aborts the decode in progress.
type Kind string

const (
	KindInvalidLength      Kind = "invalid_length"
	KindUnexpectedEOF      Kind = "unexpected_eof"
	KindTruncatedTLV       Kind = "truncated_tlv"
	KindUnknownTLV         Kind = "unknown_tlv"
	KindInvalidStructure   Kind = "invalid_tlv_structure"
	KindInvalidValue       Kind = "invalid_value"
	KindMissingRequiredTLV Kind = "missing_required_tlv"
	KindDuplicateTLV       Kind = "duplicate_tlv"
	KindUnsupportedFormat  Kind = "unsupported_format"
	KindJSONParse          Kind = "json_parse_error"
	KindYAMLParse          Kind = "yaml_parse_error"
	KindGenerationFailed   Kind = "generation_failed"
	KindExcessiveNesting   Kind = "excessive_nesting"
)

// BoundaryType is the coarse category surfaced at a public API boundary
// (CLI, HTTP handler, or any other collaborator translating a BindError for
// an end user). Several Kinds map to the same BoundaryType.
type BoundaryType string

const (
	TypeParse      BoundaryType = "parse_error"
	TypeTlv        BoundaryType = "tlv_error"
	TypeValidation BoundaryType = "validation_error"
	TypeMic        BoundaryType = "mic_error"
	TypeFile       BoundaryType = "file_error"
	TypeFormat     BoundaryType = "format_error"
	TypeGeneration BoundaryType = "generation_error"
)

var boundaryByKind = map[Kind]BoundaryType{
	KindInvalidLength:      TypeTlv,
	KindUnexpectedEOF:      TypeParse,
	KindTruncatedTLV:       TypeTlv,
	KindUnknownTLV:         TypeTlv,
	KindInvalidStructure:   TypeTlv,
	KindInvalidValue:       TypeValidation,
	KindMissingRequiredTLV: TypeValidation,
	KindDuplicateTLV:       TypeValidation,
	KindUnsupportedFormat:  TypeFormat,
	KindJSONParse:          TypeFormat,
	KindYAMLParse:          TypeFormat,
	KindGenerationFailed:   TypeGeneration,
	KindExcessiveNesting:   TypeParse,
}

var suggestionByKind = map[Kind]string{
	KindInvalidLength:      "the length field is outside the encodable range; verify the source that produced this value",
	KindUnexpectedEOF:      "file may be truncated; try re-downloading or re-exporting the configuration",
	KindTruncatedTLV:       "a TLV claims more bytes than remain in its parent; the file or sub-TLV payload is likely truncated",
	KindInvalidStructure:   "the byte stream does not decompose into well-formed type/length/value records at this offset",
	KindInvalidValue:       "the value does not match the expected format for its declared type; check units and ranges",
	KindMissingRequiredTLV: "add the missing required TLV before regenerating the configuration",
	KindDuplicateTLV:       "remove or merge the duplicate TLV entries",
	KindUnsupportedFormat:  "use one of the supported formats: binary, json, yaml, or config",
	KindJSONParse:          "the input is not well-formed JSON; check for missing commas, quotes, or braces",
	KindYAMLParse:          "the input is not well-formed YAML; check indentation and key syntax",
	KindGenerationFailed:   "the enriched document could not be lowered back to a valid TLV tree",
	KindExcessiveNesting:   "the TLV nests deeper than the configured maximum; raise the limit or inspect the input for corruption",
}

// BindError is the error type returned across every public core boundary.
type BindError struct {
	Kind       Kind
	Message    string
	Location   string // byte offset / line / enclosing TLV type path, formatted for humans
	Suggestion string
	Err        error // wrapped cause, if any
}

// Error implements the error interface.
func (e *BindError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Location)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *BindError) Unwrap() error {
	return e.Err
}

// Type reports the coarse BoundaryType for this error's Kind.
func (e *BindError) Type() BoundaryType {
	if t, ok := boundaryByKind[e.Kind]; ok {
		return t
	}
	return TypeParse
}

// New constructs a BindError of the given Kind, filling in the Suggestion
// from the standard table. Location is left empty; use WithLocation to
// attach it.
func New(kind Kind, format string, args ...any) *BindError {
	return &BindError{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		Suggestion: suggestionByKind[kind],
	}
}

// Wrap constructs a BindError that wraps an existing error as its cause.
func Wrap(kind Kind, err error, format string, args ...any) *BindError {
	be := New(kind, format, args...)
	be.Err = err
	return be
}

// WithLocation returns a copy of e with Location set. It never mutates e.
func (e *BindError) WithLocation(location string) *BindError {
	cp := *e
	cp.Location = location
	return &cp
}

// Is supports errors.Is(err, bderrors.New(kind, "")) by comparing Kind.
func (e *BindError) Is(target error) bool {
	var other *BindError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// KindOf extracts the Kind of err if it is (or wraps) a *BindError.
func KindOf(err error) (Kind, bool) {
	var be *BindError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
