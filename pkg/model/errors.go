package model

import (
	"errors"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// Database errors.
//
// ErrUnknownType, ErrMalformedRecord and ErrInvalidValue originate in
// the registry and wire packages and are mirrored here so callers can
// match every database failure against a single package.
var (
	// ErrUnknownType is returned when a type string cannot be resolved
	// to a characteristic or service type.
	ErrUnknownType = registry.ErrUnknownType

	// ErrMalformedRecord is returned when a wire record lacks one of
	// its mandatory keys.
	ErrMalformedRecord = wire.ErrMalformedRecord

	// ErrInvalidValue is returned when a value does not fit the
	// characteristic's format.
	ErrInvalidValue = wire.ErrInvalidValue

	// ErrDuplicateCharacteristic is returned when a service already
	// carries a characteristic of the requested type.
	ErrDuplicateCharacteristic = errors.New("duplicate characteristic")

	// ErrNotFound is returned by the fail-fast id lookups when no
	// object carries the requested id.
	ErrNotFound = errors.New("not found")
)
