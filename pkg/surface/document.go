// Package surface implements the human-editable YAML/JSON document shape
// (spec.md §4.9, §6) and its conversion to and from an EnrichedTlv tree.
// It performs no value interpretation itself — ValueCodec and the
// enrich package already did that — it only reshapes the tree into (and
// out of) a form that marshals cleanly through encoding/json and
// gopkg.in/yaml.v3.
package surface

import (
	"time"

	"github.com/google/uuid"

	"github.com/awksedgreep/bindocsis/pkg/docsis"
)

// Document is the top-level human surface (spec.md §6's worked example):
// a DOCSIS version tag, an ordered TLV sequence, and optional metadata.
type Document struct {
	DocsisVersion string         `yaml:"docsis_version" json:"docsis_version"`
	Tlvs          []*Node        `yaml:"tlvs" json:"tlvs"`
	Metadata      map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Node is a single surface TLV entry. Exactly one of FormattedValue or
// Subtlvs is normally populated; when both are present on input,
// Subtlvs takes precedence (spec.md §4.9).
type Node struct {
	Type           int     `yaml:"type" json:"type"`
	Name           string  `yaml:"name,omitempty" json:"name,omitempty"`
	Description    string  `yaml:"description,omitempty" json:"description,omitempty"`
	ValueType      string  `yaml:"value_type,omitempty" json:"value_type,omitempty"`
	FormattedValue any     `yaml:"formatted_value,omitempty" json:"formatted_value,omitempty"`
	RawValue       any     `yaml:"raw_value,omitempty" json:"raw_value,omitempty"`
	Subtlvs        []*Node `yaml:"subtlvs,omitempty" json:"subtlvs,omitempty"`
}

// FromEnriched converts an EnrichedTlv tree into its surface form.
func FromEnriched(tlvs []*docsis.EnrichedTlv) []*Node {
	out := make([]*Node, 0, len(tlvs))
	for _, e := range tlvs {
		out = append(out, nodeFromEnriched(e))
	}
	return out
}

func nodeFromEnriched(e *docsis.EnrichedTlv) *Node {
	n := &Node{
		Type:        int(e.Type),
		Name:        e.Name,
		Description: e.Description,
		ValueType:   string(e.ValueType),
		RawValue:    e.RawValue,
	}
	if len(e.SubTlvs) > 0 {
		n.Subtlvs = FromEnriched(e.SubTlvs)
		return n
	}
	if e.StructuredValue != nil {
		n.FormattedValue = map[string]any{
			"oid":   e.StructuredValue.OID,
			"type":  e.StructuredValue.Type,
			"value": e.StructuredValue.Value,
		}
		return n
	}
	n.FormattedValue = e.FormattedValue
	return n
}

// ToEnriched converts a surface tree back into an EnrichedTlv tree,
// ready for enrich.UnEnrich. It does not re-resolve registry metadata:
// Name/Description/ValueType/etc. travel with the node as authored.
func ToEnriched(nodes []*Node) []*docsis.EnrichedTlv {
	out := make([]*docsis.EnrichedTlv, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, enrichedFromNode(n))
	}
	return out
}

func enrichedFromNode(n *Node) *docsis.EnrichedTlv {
	e := &docsis.EnrichedTlv{
		Type:        byte(n.Type),
		Name:        n.Name,
		Description: n.Description,
		ValueType:   docsis.ValueType(n.ValueType),
	}

	if len(n.Subtlvs) > 0 {
		e.SubTlvs = ToEnriched(n.Subtlvs)
		e.ValueType = docsis.ValueTypeCompound
		return e
	}

	if obj, ok := structuredValue(n.FormattedValue); ok {
		e.StructuredValue = obj
		return e
	}

	if s, ok := n.FormattedValue.(string); ok {
		e.FormattedValue = s
	}
	return e
}

func structuredValue(v any) (*docsis.ASN1Object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	oid, _ := m["oid"].(string)
	typ, _ := m["type"].(string)
	if oid == "" || typ == "" {
		return nil, false
	}
	return &docsis.ASN1Object{OID: oid, Type: typ, Value: m["value"]}, true
}

// BuildMetadata produces the document's optional metadata block
// (spec.md §6's worked example: total_tlvs, parsed_at). document_id is a
// fresh random UUID, letting a caller correlate a generated document with
// a later log line or bug report without inventing its own ID scheme.
func BuildMetadata(tlvs []*docsis.EnrichedTlv, parsedAt time.Time) map[string]any {
	return map[string]any{
		"document_id": uuid.NewString(),
		"total_tlvs":  countTlvs(tlvs),
		"parsed_at":   parsedAt.UTC().Format(time.RFC3339),
	}
}

func countTlvs(tlvs []*docsis.EnrichedTlv) int {
	n := 0
	for _, t := range tlvs {
		n++
		n += countTlvs(t.SubTlvs)
	}
	return n
}
