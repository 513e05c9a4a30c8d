package model

import (
	"fmt"
	"sync"

	"github.com/hap-protocol/hap-go/pkg/wire"
)

// CharacteristicMetadata carries the optional properties of a new
// characteristic. Fields left at their zero value fall back to the
// catalog defaults for the characteristic's type, or stay absent when
// the catalog defines none.
type CharacteristicMetadata struct {
	// Format overrides the catalog format. Mandatory for vendor
	// characteristics, which have no catalog entry.
	Format wire.Format

	// Perms overrides the catalog permissions. Mandatory for vendor
	// characteristics.
	Perms []wire.Permission

	// Value is the initial value. nil leaves the characteristic unset.
	Value any

	// Description is a human-readable description.
	Description string

	// Unit overrides the catalog unit.
	Unit string

	// MinValue is the minimum of the advertised value range. Any
	// numeric type is accepted.
	MinValue any

	// MaxValue is the maximum of the advertised value range.
	MaxValue any

	// MinStep is the advertised value granularity.
	MinStep any

	// MaxLen is the advertised maximum string length.
	MaxLen any

	// ValidValues is the closed set of values the characteristic
	// accepts.
	ValidValues []int64
}

// Characteristic is a single typed value within a service.
type Characteristic struct {
	mu sync.RWMutex

	// iid is assigned by the owning accessory and immutable afterwards.
	iid uint64

	// typ is the canonical characteristic type UUID.
	typ string

	format wire.Format
	perms  []wire.Permission
	value  any

	// Optional metadata. Pointers distinguish absent from zero.
	description *string
	unit        *string
	minValue    *float64
	maxValue    *float64
	minStep     *float64
	maxLen      *int64
	validValues []int64
}

// IID returns the characteristic's instance id within its accessory.
func (c *Characteristic) IID() uint64 {
	return c.iid
}

// Type returns the canonical characteristic type UUID.
func (c *Characteristic) Type() string {
	return c.typ
}

// Format returns the characteristic's value format.
func (c *Characteristic) Format() wire.Format {
	return c.format
}

// Perms returns a copy of the characteristic's permissions.
func (c *Characteristic) Perms() []wire.Permission {
	return append([]wire.Permission(nil), c.perms...)
}

// Value returns the current value, or nil when unset.
func (c *Characteristic) Value() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetValue sets the current value, coercing it to the canonical Go
// type for the characteristic's format. Values that do not fit report
// ErrInvalidValue. Setting nil clears the value.
func (c *Characteristic) SetValue(value any) error {
	coerced, err := wire.CoerceValue(c.format, value)
	if err != nil {
		return fmt.Errorf("characteristic %s: %w", c.typ, err)
	}
	c.mu.Lock()
	c.value = coerced
	c.mu.Unlock()
	return nil
}

// Description returns the description, or "" when absent.
func (c *Characteristic) Description() string {
	if c.description == nil {
		return ""
	}
	return *c.description
}

// Unit returns the unit, or "" when absent.
func (c *Characteristic) Unit() string {
	if c.unit == nil {
		return ""
	}
	return *c.unit
}

// MinValue returns the advertised minimum and whether one is set.
func (c *Characteristic) MinValue() (float64, bool) {
	if c.minValue == nil {
		return 0, false
	}
	return *c.minValue, true
}

// MaxValue returns the advertised maximum and whether one is set.
func (c *Characteristic) MaxValue() (float64, bool) {
	if c.maxValue == nil {
		return 0, false
	}
	return *c.maxValue, true
}

// MinStep returns the advertised granularity and whether one is set.
func (c *Characteristic) MinStep() (float64, bool) {
	if c.minStep == nil {
		return 0, false
	}
	return *c.minStep, true
}

// MaxLen returns the advertised maximum string length and whether one
// is set.
func (c *Characteristic) MaxLen() (int64, bool) {
	if c.maxLen == nil {
		return 0, false
	}
	return *c.maxLen, true
}

// ValidValues returns a copy of the closed value set, or nil when the
// characteristic accepts its full range.
func (c *Characteristic) ValidValues() []int64 {
	if c.validValues == nil {
		return nil
	}
	return append([]int64(nil), c.validValues...)
}

// record converts the characteristic to its wire form.
func (c *Characteristic) record() wire.CharacteristicRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return wire.CharacteristicRecord{
		IID:         c.iid,
		Type:        c.typ,
		Perms:       append([]wire.Permission(nil), c.perms...),
		Format:      c.format,
		Value:       c.value,
		Description: c.description,
		MinValue:    c.minValue,
		MaxValue:    c.maxValue,
		ValidValues: c.validValues,
		Unit:        c.unit,
		MinStep:     c.minStep,
		MaxLen:      c.maxLen,
	}
}

// floatPointer converts any numeric metadata value to *float64.
// Non-numeric values report ErrInvalidValue.
func floatPointer(field string, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be numeric, got %T", ErrInvalidValue, field, v)
	}
	return &f, nil
}

// intPointer converts any integer metadata value to *int64.
func intPointer(field string, v any) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	f, ok := toFloat64(v)
	if !ok || f != float64(int64(f)) {
		return nil, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidValue, field, v)
	}
	n := int64(f)
	return &n, nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
