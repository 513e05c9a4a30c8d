package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeDocument encodes a document to its compact JSON wire form.
// The document is validated first.
func EncodeDocument(doc *Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return json.Marshal(doc)
}

// EncodeDocumentIndent is EncodeDocument with indented output, for
// files meant to be read by people.
func EncodeDocumentIndent(doc *Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeDocument decodes the JSON wire form of a document, validates
// it, and normalizes characteristic values to the Go types implied by
// their formats.
func DecodeDocument(data []byte) (*Document, error) {
	return DecodeDocumentFrom(bytes.NewReader(data))
}

// DecodeDocumentFrom is DecodeDocument reading from r.
func DecodeDocumentFrom(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	for ai := range doc.Accessories {
		acc := &doc.Accessories[ai]
		for si := range acc.Services {
			svc := &acc.Services[si]
			if svc.Linked == nil {
				svc.Linked = []uint64{}
			}
			for ci := range svc.Characteristics {
				c := &svc.Characteristics[ci]
				c.Value = NormalizeValue(c.Format, c.Value)
			}
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
