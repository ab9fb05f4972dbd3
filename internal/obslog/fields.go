package obslog

// Standard field keys for structured logging across bindocsis. KeyError,
// KeyDurationMs and KeyOperation are the ambient keys that apply to every
// subcommand; the rest name DOCSIS-specific fields.
const (
	KeyFilePath   = "file_path"
	KeyFormat     = "format"
	KeyDocsisVer  = "docsis_version"
	KeyTlvCount   = "tlv_count"
	KeyErrorCode  = "error_code"
	KeyErrorKind  = "error_kind"
	KeyError      = "error"
	KeyDurationMs = "duration_ms"
	KeyOperation  = "operation"
)
