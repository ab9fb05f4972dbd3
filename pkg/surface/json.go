package surface

import (
	"encoding/json"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

// MarshalJSON renders doc as indented JSON bytes.
func MarshalJSON(doc *Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to marshal document to JSON")
	}
	return b, nil
}

// UnmarshalJSON parses JSON bytes into a Document.
func UnmarshalJSON(b []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, bderrors.Wrap(bderrors.KindJSONParse, err, "failed to parse JSON document")
	}
	return &doc, nil
}
