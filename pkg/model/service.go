package model

import (
	"fmt"
	"sync"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// Service groups the characteristics of one accessory function, such
// as a lightbulb or a temperature sensor. Services are created through
// Accessory.AddService so instance ids stay unique per accessory.
type Service struct {
	mu sync.RWMutex

	owner *Accessory
	iid   uint64

	// typ is the canonical service type UUID.
	typ string

	characteristics []*Characteristic
	linked          []*Service
}

func newService(owner *Accessory, iid uint64, typ string) *Service {
	return &Service{owner: owner, iid: iid, typ: typ}
}

// IID returns the service's instance id within its accessory.
func (s *Service) IID() uint64 {
	return s.iid
}

// Type returns the canonical service type UUID.
func (s *Service) Type() string {
	return s.typ
}

// AddCharacteristic adds a characteristic of the given type. The type
// may be a catalog name, a short hex code or a full UUID. Format,
// permissions and unit default to the catalog entry for the type;
// vendor characteristics without a catalog entry must supply Format
// and Perms through meta.
//
// Adding a type the service already carries reports
// ErrDuplicateCharacteristic.
func (s *Service) AddCharacteristic(typ string, meta CharacteristicMetadata) (*Characteristic, error) {
	canonical, err := registry.CharacteristicUUID(typ)
	if err != nil {
		return nil, err
	}

	format := meta.Format
	perms := meta.Perms
	unit := meta.Unit
	if def, lookupErr := registry.LookupCharacteristic(canonical); lookupErr == nil {
		if format == "" {
			format = wire.Format(def.Format)
		}
		if perms == nil {
			perms = make([]wire.Permission, 0, len(def.Perms))
			for _, p := range def.Perms {
				perms = append(perms, wire.Permission(p))
			}
		}
		if unit == "" {
			unit = def.Unit
		}
	} else if format == "" || perms == nil {
		return nil, fmt.Errorf("%w: %s has no catalog entry, metadata must carry format and perms", ErrUnknownType, canonical)
	}

	char := &Characteristic{
		typ:    canonical,
		format: format,
		perms:  append([]wire.Permission(nil), perms...),
	}
	if meta.Description != "" {
		d := meta.Description
		char.description = &d
	}
	if unit != "" {
		u := unit
		char.unit = &u
	}
	if char.minValue, err = floatPointer("minValue", meta.MinValue); err != nil {
		return nil, err
	}
	if char.maxValue, err = floatPointer("maxValue", meta.MaxValue); err != nil {
		return nil, err
	}
	if char.minStep, err = floatPointer("minStep", meta.MinStep); err != nil {
		return nil, err
	}
	if char.maxLen, err = intPointer("maxLen", meta.MaxLen); err != nil {
		return nil, err
	}
	if meta.ValidValues != nil {
		char.validValues = append([]int64(nil), meta.ValidValues...)
	}
	if meta.Value != nil {
		if char.value, err = wire.CoerceValue(format, meta.Value); err != nil {
			return nil, fmt.Errorf("characteristic %s: %w", canonical, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.characteristics {
		if existing.typ == canonical {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCharacteristic, canonical)
		}
	}
	char.iid = s.owner.nextInstanceID()
	s.characteristics = append(s.characteristics, char)
	return char, nil
}

// Characteristics returns the service's characteristics in the order
// they were added.
func (s *Service) Characteristics() []*Characteristic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Characteristic(nil), s.characteristics...)
}

// Characteristic returns the characteristic of the given type. The
// type may be a catalog name, a short hex code or a full UUID.
// Unresolvable types report ErrUnknownType, resolvable but absent
// types ErrNotFound.
func (s *Service) Characteristic(typ string) (*Characteristic, error) {
	canonical, err := registry.CharacteristicUUID(typ)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, char := range s.characteristics {
		if char.typ == canonical {
			return char, nil
		}
	}
	return nil, fmt.Errorf("%w: characteristic %s in service %d", ErrNotFound, canonical, s.iid)
}

// HasCharacteristic reports whether the service carries a
// characteristic of the given type. Unresolvable types report false.
func (s *Service) HasCharacteristic(typ string) bool {
	char, err := s.Characteristic(typ)
	return err == nil && char != nil
}

// Value returns the current value of the characteristic of the given
// type. It reports nil without error when the characteristic exists
// but has no value.
func (s *Service) Value(typ string) (any, error) {
	char, err := s.Characteristic(typ)
	if err != nil {
		return nil, err
	}
	return char.Value(), nil
}

// AddLinkedService links another service of the same accessory to this
// one. Links are one-directional and serialized as the linked
// service's instance id. Linking the same service twice is a no-op.
func (s *Service) AddLinkedService(other *Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.linked {
		if existing == other {
			return
		}
	}
	s.linked = append(s.linked, other)
}

// Linked returns the services linked from this one.
func (s *Service) Linked() []*Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Service(nil), s.linked...)
}

// record converts the service to its wire form.
func (s *Service) record() wire.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec := wire.ServiceRecord{
		IID:             s.iid,
		Type:            s.typ,
		Characteristics: make([]wire.CharacteristicRecord, 0, len(s.characteristics)),
		Linked:          make([]uint64, 0, len(s.linked)),
	}
	for _, char := range s.characteristics {
		rec.Characteristics = append(rec.Characteristics, char.record())
	}
	for _, linked := range s.linked {
		rec.Linked = append(rec.Linked, linked.iid)
	}
	return rec
}
