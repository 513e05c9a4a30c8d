package wire

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a wire record lacks one of its
// mandatory keys.
var ErrMalformedRecord = errors.New("malformed record")

// ErrInvalidValue is returned when a value cannot be coerced to the
// type its characteristic format requires.
var ErrInvalidValue = errors.New("invalid value")

// Document is the top-level wire shape of a serialized accessory
// database.
//
// JSON encoding:
//
//	{
//	  "accessories": [ <accessory>, ... ]
//	}
type Document struct {
	Accessories []AccessoryRecord `json:"accessories"`
}

// AccessoryRecord is the wire shape of a single accessory.
//
// JSON encoding:
//
//	{
//	  "aid": 1,
//	  "services": [ <service>, ... ]
//	}
type AccessoryRecord struct {
	AID      uint64          `json:"aid"`
	Services []ServiceRecord `json:"services"`
}

// ServiceRecord is the wire shape of a single service. Linked carries
// the instance ids of linked sibling services and is always emitted,
// empty or not.
//
// JSON encoding:
//
//	{
//	  "iid": 8,
//	  "type": "00000043-0000-1000-8000-0026BB765291",
//	  "characteristics": [ <characteristic>, ... ],
//	  "linked": [12, 13]
//	}
type ServiceRecord struct {
	IID             uint64                 `json:"iid"`
	Type            string                 `json:"type"`
	Characteristics []CharacteristicRecord `json:"characteristics"`
	Linked          []uint64               `json:"linked"`
}

// CharacteristicRecord is the wire shape of a single characteristic.
// The keys iid, type, perms and format are mandatory; everything else
// is emitted only when present.
//
// JSON encoding:
//
//	{
//	  "iid": 9,
//	  "type": "00000025-0000-1000-8000-0026BB765291",
//	  "perms": ["pr", "pw", "ev"],
//	  "format": "bool",
//	  "value": false
//	}
type CharacteristicRecord struct {
	IID         uint64       `json:"iid"`
	Type        string       `json:"type"`
	Perms       []Permission `json:"perms"`
	Format      Format       `json:"format"`
	Value       any          `json:"value,omitempty"`
	Description *string      `json:"description,omitempty"`
	MinValue    *float64     `json:"minValue,omitempty"`
	MaxValue    *float64     `json:"maxValue,omitempty"`
	ValidValues []int64      `json:"valid-values,omitempty"`
	Unit        *string      `json:"unit,omitempty"`
	MinStep     *float64     `json:"minStep,omitempty"`
	MaxLen      *int64       `json:"maxLen,omitempty"`
}

// Validate checks that the document and every record in it carries
// the mandatory keys. An empty accessory list is a valid, empty
// database.
func (d *Document) Validate() error {
	for i := range d.Accessories {
		if err := d.Accessories[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the accessory record and all nested records.
func (a *AccessoryRecord) Validate() error {
	if a.AID == 0 {
		return fmt.Errorf("%w: accessory missing aid", ErrMalformedRecord)
	}
	for i := range a.Services {
		if err := a.Services[i].Validate(); err != nil {
			return fmt.Errorf("accessory %d: %w", a.AID, err)
		}
	}
	return nil
}

// Validate checks the service record and its characteristics.
func (s *ServiceRecord) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("%w: service missing type", ErrMalformedRecord)
	}
	if s.IID == 0 {
		return fmt.Errorf("%w: service %q missing iid", ErrMalformedRecord, s.Type)
	}
	for i := range s.Characteristics {
		if err := s.Characteristics[i].Validate(); err != nil {
			return fmt.Errorf("service %d: %w", s.IID, err)
		}
	}
	return nil
}

// Validate checks the characteristic record's mandatory keys.
func (c *CharacteristicRecord) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("%w: characteristic missing type", ErrMalformedRecord)
	}
	if c.IID == 0 {
		return fmt.Errorf("%w: characteristic %q missing iid", ErrMalformedRecord, c.Type)
	}
	if len(c.Perms) == 0 {
		return fmt.Errorf("%w: characteristic %q missing perms", ErrMalformedRecord, c.Type)
	}
	if c.Format == "" {
		return fmt.Errorf("%w: characteristic %q missing format", ErrMalformedRecord, c.Type)
	}
	return nil
}
