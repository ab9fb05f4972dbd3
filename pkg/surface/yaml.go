package surface

import (
	"gopkg.in/yaml.v3"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

// MarshalYAML renders doc as YAML bytes.
func MarshalYAML(doc *Document) ([]byte, error) {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, bderrors.Wrap(bderrors.KindGenerationFailed, err, "failed to marshal document to YAML")
	}
	return b, nil
}

// UnmarshalYAML parses YAML bytes into a Document.
func UnmarshalYAML(b []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, bderrors.Wrap(bderrors.KindYAMLParse, err, "failed to parse YAML document")
	}
	return &doc, nil
}
