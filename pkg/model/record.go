package model

import (
	"fmt"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// accessoryFromRecord rebuilds an accessory from its wire form in two
// passes. The first pass builds services and characteristics with the
// instance ids the record carries, the second resolves linked service
// ids to service pointers. The per-accessory id counter continues past
// the largest loaded instance id.
func accessoryFromRecord(rec wire.AccessoryRecord) (*Accessory, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	acc := NewAccessoryWithAID(rec.AID)
	var maxIID uint64
	for _, svcRec := range rec.Services {
		svc, err := serviceFromRecord(acc, svcRec)
		if err != nil {
			return nil, fmt.Errorf("accessory %d: %w", rec.AID, err)
		}
		acc.services = append(acc.services, svc)
		if svc.iid > maxIID {
			maxIID = svc.iid
		}
		for _, char := range svc.characteristics {
			if char.iid > maxIID {
				maxIID = char.iid
			}
		}
	}
	acc.lastIID.Store(maxIID)

	for i, svcRec := range rec.Services {
		svc := acc.services[i]
		for _, linkedIID := range svcRec.Linked {
			linked, err := acc.ServiceByIID(linkedIID)
			if err != nil {
				return nil, fmt.Errorf("accessory %d: service %d links to service %d: %w", rec.AID, svc.iid, linkedIID, ErrNotFound)
			}
			svc.linked = append(svc.linked, linked)
		}
	}
	return acc, nil
}

func serviceFromRecord(owner *Accessory, rec wire.ServiceRecord) (*Service, error) {
	canonical, err := registry.ServiceUUID(rec.Type)
	if err != nil {
		return nil, fmt.Errorf("service %d: %w", rec.IID, err)
	}
	svc := newService(owner, rec.IID, canonical)
	for _, charRec := range rec.Characteristics {
		char, err := characteristicFromRecord(charRec)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", rec.IID, err)
		}
		svc.characteristics = append(svc.characteristics, char)
	}
	return svc, nil
}

func characteristicFromRecord(rec wire.CharacteristicRecord) (*Characteristic, error) {
	canonical, err := registry.CharacteristicUUID(rec.Type)
	if err != nil {
		return nil, fmt.Errorf("characteristic %d: %w", rec.IID, err)
	}
	char := &Characteristic{
		iid:         rec.IID,
		typ:         canonical,
		format:      rec.Format,
		perms:       append([]wire.Permission(nil), rec.Perms...),
		value:       normalizeRecordValue(rec.Format, rec.Value),
		description: clonePointer(rec.Description),
		unit:        clonePointer(rec.Unit),
		minValue:    clonePointer(rec.MinValue),
		maxValue:    clonePointer(rec.MaxValue),
		minStep:     clonePointer(rec.MinStep),
		maxLen:      clonePointer(rec.MaxLen),
	}
	if rec.ValidValues != nil {
		char.validValues = append([]int64(nil), rec.ValidValues...)
	}
	return char, nil
}

// normalizeRecordValue brings a record value into the canonical Go
// type for its format. Values that do not fit the format are kept
// verbatim so a foreign document survives a load and store unchanged.
func normalizeRecordValue(format wire.Format, value any) any {
	normalized := wire.NormalizeValue(format, value)
	coerced, err := wire.CoerceValue(format, normalized)
	if err != nil {
		return normalized
	}
	return coerced
}

func clonePointer[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
