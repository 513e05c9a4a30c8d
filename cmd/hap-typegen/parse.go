package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hap-protocol/hap-go/pkg/registry"
)

// baseUUIDSuffix is the Apple-defined tail shared by all short-code
// types. A short code XX expands to 000000XX + this suffix.
const baseUUIDSuffix = "-0000-1000-8000-0026BB765291"

// characteristicsFile mirrors the layout of data/characteristics.yaml.
type characteristicsFile struct {
	Characteristics []registry.CharacteristicDef `yaml:"characteristics"`
}

// servicesFile mirrors the layout of data/services.yaml.
type servicesFile struct {
	Services []registry.ServiceDef `yaml:"services"`
}

// ParseCharacteristics parses the characteristic catalog from YAML
// bytes, deriving each entry's full UUID from its short code.
func ParseCharacteristics(data []byte) ([]registry.CharacteristicDef, error) {
	var cf characteristicsFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing characteristics catalog: %w", err)
	}
	seen := make(map[string]bool, len(cf.Characteristics))
	for i := range cf.Characteristics {
		def := &cf.Characteristics[i]
		if def.Name == "" {
			return nil, fmt.Errorf("characteristic entry %d missing name", i)
		}
		u, ok := expandCode(def.Code)
		if !ok {
			return nil, fmt.Errorf("characteristic %q: invalid code %q", def.Name, def.Code)
		}
		def.UUID = u
		if def.Format == "" {
			return nil, fmt.Errorf("characteristic %q missing format", def.Name)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate characteristic name %q", def.Name)
		}
		seen[def.Name] = true
	}
	return cf.Characteristics, nil
}

// ParseServices parses the service catalog from YAML bytes, deriving
// each entry's full UUID from its short code.
func ParseServices(data []byte) ([]registry.ServiceDef, error) {
	var sf servicesFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing services catalog: %w", err)
	}
	seen := make(map[string]bool, len(sf.Services))
	for i := range sf.Services {
		def := &sf.Services[i]
		if def.Name == "" {
			return nil, fmt.Errorf("service entry %d missing name", i)
		}
		u, ok := expandCode(def.Code)
		if !ok {
			return nil, fmt.Errorf("service %q: invalid code %q", def.Name, def.Code)
		}
		def.UUID = u
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate service name %q", def.Name)
		}
		seen[def.Name] = true
	}
	return sf.Services, nil
}

// LoadCharacteristics loads and parses the characteristic catalog from
// a file.
func LoadCharacteristics(path string) ([]registry.CharacteristicDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseCharacteristics(data)
}

// LoadServices loads and parses the service catalog from a file.
func LoadServices(path string) ([]registry.ServiceDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseServices(data)
}

// ValidateServiceRefs checks that every required and optional
// characteristic named by a service exists in the characteristic
// catalog.
func ValidateServiceRefs(services []registry.ServiceDef, chars []registry.CharacteristicDef) error {
	known := make(map[string]bool, len(chars))
	for _, def := range chars {
		known[def.Name] = true
	}
	for _, svc := range services {
		for _, ref := range svc.Required {
			if !known[ref] {
				return fmt.Errorf("service %q: unknown required characteristic %q", svc.Name, ref)
			}
		}
		for _, ref := range svc.Optional {
			if !known[ref] {
				return fmt.Errorf("service %q: unknown optional characteristic %q", svc.Name, ref)
			}
		}
	}
	return nil
}

// expandCode expands a short hex type code ("3E", "121") to the full
// canonical UUID. Codes longer than eight hex digits are rejected.
func expandCode(code string) (string, bool) {
	if code == "" || len(code) > 8 {
		return "", false
	}
	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%08X%s", v, baseUUIDSuffix), true
}
