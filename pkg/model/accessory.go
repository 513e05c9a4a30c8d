package model

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// ServiceOptions carries the optional behavior of Accessory.AddService.
type ServiceOptions struct {
	// Name adds a name characteristic with the given value.
	Name string

	// AddRequired adds the characteristics the catalog marks required
	// for the service type, with catalog defaults and no value.
	AddRequired bool
}

// Accessory is one addressable device within an accessory database.
// Instance ids for its services and characteristics are minted from a
// per-accessory counter and never reused.
type Accessory struct {
	mu sync.RWMutex

	aid      uint64
	services []*Service

	// lastIID holds the last minted instance id. The first id is 1.
	lastIID atomic.Uint64
}

// NewAccessory returns an accessory with an id from the process-wide
// generator.
func NewAccessory() *Accessory {
	return NewAccessoryWithAID(NextAccessoryID())
}

// NewAccessoryWithAID returns an accessory with the given id.
func NewAccessoryWithAID(aid uint64) *Accessory {
	return &Accessory{aid: aid}
}

// NewAccessoryWithInfo returns an accessory with an id from the
// process-wide generator and a populated accessory information
// service.
func NewAccessoryWithInfo(name, manufacturer, model, serialNumber, firmwareRevision string) (*Accessory, error) {
	a := NewAccessory()
	svc, err := a.AddService(registry.ServiceAccessoryInformation, nil)
	if err != nil {
		return nil, err
	}
	if _, err := svc.AddCharacteristic(registry.CharacteristicIdentify, CharacteristicMetadata{Description: "Identify"}); err != nil {
		return nil, err
	}
	values := []struct {
		typ   string
		value string
	}{
		{registry.CharacteristicName, name},
		{registry.CharacteristicManufacturer, manufacturer},
		{registry.CharacteristicModel, model},
		{registry.CharacteristicSerialNumber, serialNumber},
		{registry.CharacteristicFirmwareRevision, firmwareRevision},
	}
	for _, v := range values {
		if _, err := svc.AddCharacteristic(v.typ, CharacteristicMetadata{Value: v.value}); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// AID returns the accessory's id.
func (a *Accessory) AID() uint64 {
	return a.aid
}

func (a *Accessory) nextInstanceID() uint64 {
	return a.lastIID.Add(1)
}

// AddService adds a service of the given type. The type may be a
// catalog name, a short hex code or a full UUID. A nil opts adds the
// bare service.
func (a *Accessory) AddService(typ string, opts *ServiceOptions) (*Service, error) {
	canonical, err := registry.ServiceUUID(typ)
	if err != nil {
		return nil, err
	}
	svc := newService(a, a.nextInstanceID(), canonical)

	a.mu.Lock()
	a.services = append(a.services, svc)
	a.mu.Unlock()

	if opts == nil {
		return svc, nil
	}
	if opts.Name != "" {
		if _, err := svc.AddCharacteristic(registry.CharacteristicName, CharacteristicMetadata{Value: opts.Name}); err != nil {
			return nil, err
		}
	}
	if opts.AddRequired {
		required, err := registry.RequiredCharacteristics(canonical)
		if err != nil {
			return nil, err
		}
		for _, typ := range required {
			if svc.HasCharacteristic(typ) {
				continue
			}
			if _, err := svc.AddCharacteristic(typ, CharacteristicMetadata{}); err != nil {
				return nil, err
			}
		}
	}
	return svc, nil
}

// Services returns the accessory's services in the order they were
// added.
func (a *Accessory) Services() []*Service {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Service(nil), a.services...)
}

// ServiceByIID returns the service with the given instance id.
// Missing ids report ErrNotFound.
func (a *Accessory) ServiceByIID(iid uint64) (*Service, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, svc := range a.services {
		if svc.iid == iid {
			return svc, nil
		}
	}
	return nil, fmt.Errorf("%w: service %d in accessory %d", ErrNotFound, iid, a.aid)
}

// CharacteristicByIID returns the characteristic with the given
// instance id, searching every service. Missing ids report
// ErrNotFound.
func (a *Accessory) CharacteristicByIID(iid uint64) (*Characteristic, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, svc := range a.services {
		for _, char := range svc.Characteristics() {
			if char.IID() == iid {
				return char, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: characteristic %d in accessory %d", ErrNotFound, iid, a.aid)
}

// FilterServices returns the services matching the query in the order
// they were added.
func (a *Accessory) FilterServices(q ServiceQuery) []*Service {
	var matched []*Service
	for _, svc := range a.Services() {
		if q.matches(svc) {
			matched = append(matched, svc)
		}
	}
	return matched
}

// FirstService returns the first service matching the query, or nil
// when none matches.
func (a *Accessory) FirstService(q ServiceQuery) *Service {
	for _, svc := range a.Services() {
		if q.matches(svc) {
			return svc
		}
	}
	return nil
}

// Record converts the accessory and everything below it to its wire
// form.
func (a *Accessory) Record() wire.AccessoryRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rec := wire.AccessoryRecord{
		AID:      a.aid,
		Services: make([]wire.ServiceRecord, 0, len(a.services)),
	}
	for _, svc := range a.services {
		rec.Services = append(rec.Services, svc.record())
	}
	return rec
}
