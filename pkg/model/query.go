package model

import (
	"reflect"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// ServiceQuery selects services. All set fields must match.
// Characteristic and service types may be catalog names, short hex
// codes or full UUIDs; an unresolvable type matches nothing.
type ServiceQuery struct {
	// Type keeps services of the given type.
	Type string

	// Characteristics keeps services whose characteristic of each key
	// type carries the given value. Values are compared after coercion
	// to the characteristic's format, so 1 matches an int format value
	// of 1 regardless of the probe's Go type.
	Characteristics map[string]any

	// Parent keeps services the given service links to.
	Parent *Service

	// Child keeps services that link to the given service.
	Child *Service
}

func (q ServiceQuery) matches(svc *Service) bool {
	if q.Type != "" {
		canonical, err := registry.ServiceUUID(q.Type)
		if err != nil || svc.Type() != canonical {
			return false
		}
	}
	for typ, probe := range q.Characteristics {
		if !characteristicMatches(svc, typ, probe) {
			return false
		}
	}
	if q.Parent != nil && !containsService(q.Parent.Linked(), svc) {
		return false
	}
	if q.Child != nil && !containsService(svc.Linked(), q.Child) {
		return false
	}
	return true
}

func characteristicMatches(svc *Service, typ string, probe any) bool {
	char, err := svc.Characteristic(typ)
	if err != nil {
		return false
	}
	coerced, err := wire.CoerceValue(char.Format(), probe)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(char.Value(), coerced)
}

func containsService(services []*Service, svc *Service) bool {
	for _, s := range services {
		if s == svc {
			return true
		}
	}
	return false
}
