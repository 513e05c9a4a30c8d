// Package registry holds the catalog of known HomeKit characteristic
// and service types. It resolves the three accepted spellings of a
// type (kebab-case name, short hex code, full UUID) to the canonical
// full UUID and exposes the metadata defaults recorded for each type.
//
// The catalog is embedded at build time from data/*.yaml. Vendor types
// outside the catalog are accepted wherever a full UUID is given; they
// simply carry no defaults.
package registry

import (
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrUnknownType is returned when a type string matches none of the
// accepted spellings: catalog name, short hex code, or full UUID.
var ErrUnknownType = errors.New("unknown type")

// baseUUIDSuffix is the Apple-defined tail shared by all short-code
// types. A short code XX expands to 000000XX + this suffix.
const baseUUIDSuffix = "-0000-1000-8000-0026BB765291"

// CharacteristicDef describes one characteristic type from the catalog.
// Format, Perms and Unit are the defaults applied when a characteristic
// of this type is instantiated without explicit metadata.
type CharacteristicDef struct {
	Name        string   `yaml:"name"`
	Code        string   `yaml:"code"`
	Description string   `yaml:"description"`
	Format      string   `yaml:"format"`
	Perms       []string `yaml:"perms"`
	Unit        string   `yaml:"unit"`

	// UUID is derived from Code at load time.
	UUID string `yaml:"-"`
}

// ServiceDef describes one service type from the catalog. Required and
// Optional list characteristic names from the characteristic catalog.
type ServiceDef struct {
	Name        string   `yaml:"name"`
	Code        string   `yaml:"code"`
	Description string   `yaml:"description"`
	Required    []string `yaml:"required"`
	Optional    []string `yaml:"optional"`

	// UUID is derived from Code at load time.
	UUID string `yaml:"-"`
}

type characteristicsFile struct {
	Characteristics []CharacteristicDef `yaml:"characteristics"`
}

type servicesFile struct {
	Services []ServiceDef `yaml:"services"`
}

// tables is the parsed catalog, indexed for lookup.
type tables struct {
	chars      []*CharacteristicDef
	services   []*ServiceDef
	charByName map[string]*CharacteristicDef
	charByUUID map[string]*CharacteristicDef
	svcByName  map[string]*ServiceDef
	svcByUUID  map[string]*ServiceDef
}

var (
	loadOnce sync.Once
	catalog  *tables
)

// load parses the embedded catalog exactly once. The embedded data is
// covered by tests, so a parse failure here is a broken build.
func load() *tables {
	loadOnce.Do(func() {
		charData, err := dataFS.ReadFile("data/characteristics.yaml")
		if err != nil {
			panic(fmt.Sprintf("registry: reading characteristics catalog: %v", err))
		}
		svcData, err := dataFS.ReadFile("data/services.yaml")
		if err != nil {
			panic(fmt.Sprintf("registry: reading services catalog: %v", err))
		}
		t, err := parseTables(charData, svcData)
		if err != nil {
			panic(fmt.Sprintf("registry: %v", err))
		}
		catalog = t
	})
	return catalog
}

// parseTables parses and cross-validates the two catalog files.
func parseTables(charData, svcData []byte) (*tables, error) {
	var cf characteristicsFile
	if err := yaml.Unmarshal(charData, &cf); err != nil {
		return nil, fmt.Errorf("parsing characteristics catalog: %w", err)
	}
	var sf servicesFile
	if err := yaml.Unmarshal(svcData, &sf); err != nil {
		return nil, fmt.Errorf("parsing services catalog: %w", err)
	}

	t := &tables{
		charByName: make(map[string]*CharacteristicDef, len(cf.Characteristics)),
		charByUUID: make(map[string]*CharacteristicDef, len(cf.Characteristics)),
		svcByName:  make(map[string]*ServiceDef, len(sf.Services)),
		svcByUUID:  make(map[string]*ServiceDef, len(sf.Services)),
	}

	for i := range cf.Characteristics {
		def := &cf.Characteristics[i]
		if def.Name == "" {
			return nil, fmt.Errorf("characteristic entry %d missing name", i)
		}
		u, ok := expandShortCode(def.Code)
		if !ok {
			return nil, fmt.Errorf("characteristic %q: invalid code %q", def.Name, def.Code)
		}
		def.UUID = u
		if def.Format == "" {
			return nil, fmt.Errorf("characteristic %q missing format", def.Name)
		}
		if _, dup := t.charByName[def.Name]; dup {
			return nil, fmt.Errorf("duplicate characteristic name %q", def.Name)
		}
		if _, dup := t.charByUUID[def.UUID]; dup {
			return nil, fmt.Errorf("duplicate characteristic code %q", def.Code)
		}
		t.chars = append(t.chars, def)
		t.charByName[def.Name] = def
		t.charByUUID[def.UUID] = def
	}

	for i := range sf.Services {
		def := &sf.Services[i]
		if def.Name == "" {
			return nil, fmt.Errorf("service entry %d missing name", i)
		}
		u, ok := expandShortCode(def.Code)
		if !ok {
			return nil, fmt.Errorf("service %q: invalid code %q", def.Name, def.Code)
		}
		def.UUID = u
		if _, dup := t.svcByName[def.Name]; dup {
			return nil, fmt.Errorf("duplicate service name %q", def.Name)
		}
		if _, dup := t.svcByUUID[def.UUID]; dup {
			return nil, fmt.Errorf("duplicate service code %q", def.Code)
		}
		for _, ref := range def.Required {
			if _, ok := t.charByName[ref]; !ok {
				return nil, fmt.Errorf("service %q: unknown required characteristic %q", def.Name, ref)
			}
		}
		for _, ref := range def.Optional {
			if _, ok := t.charByName[ref]; !ok {
				return nil, fmt.Errorf("service %q: unknown optional characteristic %q", def.Name, ref)
			}
		}
		t.services = append(t.services, def)
		t.svcByName[def.Name] = def
		t.svcByUUID[def.UUID] = def
	}

	return t, nil
}

// expandShortCode expands a short hex type code ("3E", "121") to the
// full canonical UUID. Codes longer than eight hex digits are rejected.
func expandShortCode(code string) (string, bool) {
	if code == "" || len(code) > 8 {
		return "", false
	}
	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%08X%s", v, baseUUIDSuffix), true
}

// canonicalize resolves one of the accepted type spellings against the
// given name index. Full UUIDs pass through unconditionally so vendor
// types outside the catalog remain usable.
func canonicalize(typ string, byName func(string) (string, bool)) (string, error) {
	if typ == "" {
		return "", fmt.Errorf("%w: empty type", ErrUnknownType)
	}
	if u, ok := byName(strings.ToLower(typ)); ok {
		return u, nil
	}
	if id, err := uuid.Parse(typ); err == nil {
		return strings.ToUpper(id.String()), nil
	}
	if u, ok := expandShortCode(typ); ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, typ)
}

// CharacteristicUUID resolves a characteristic type given as catalog
// name, short hex code, or full UUID to the canonical uppercase UUID.
func CharacteristicUUID(typ string) (string, error) {
	t := load()
	return canonicalize(typ, func(name string) (string, bool) {
		def, ok := t.charByName[name]
		if !ok {
			return "", false
		}
		return def.UUID, true
	})
}

// ServiceUUID resolves a service type given as catalog name, short hex
// code, or full UUID to the canonical uppercase UUID.
func ServiceUUID(typ string) (string, error) {
	t := load()
	return canonicalize(typ, func(name string) (string, bool) {
		def, ok := t.svcByName[name]
		if !ok {
			return "", false
		}
		return def.UUID, true
	})
}

// CharacteristicDisplayName returns the catalog name for a
// characteristic type. The second return is false for vendor types and
// unresolvable strings.
func CharacteristicDisplayName(typ string) (string, bool) {
	u, err := CharacteristicUUID(typ)
	if err != nil {
		return "", false
	}
	def, ok := load().charByUUID[u]
	if !ok {
		return "", false
	}
	return def.Name, true
}

// ServiceDisplayName returns the catalog name for a service type. The
// second return is false for vendor types and unresolvable strings.
func ServiceDisplayName(typ string) (string, bool) {
	u, err := ServiceUUID(typ)
	if err != nil {
		return "", false
	}
	def, ok := load().svcByUUID[u]
	if !ok {
		return "", false
	}
	return def.Name, true
}

// LookupCharacteristic resolves a characteristic type and returns a
// copy of its catalog entry. Vendor UUIDs resolve but have no entry,
// which is reported as ErrUnknownType.
func LookupCharacteristic(typ string) (CharacteristicDef, error) {
	u, err := CharacteristicUUID(typ)
	if err != nil {
		return CharacteristicDef{}, err
	}
	def, ok := load().charByUUID[u]
	if !ok {
		return CharacteristicDef{}, fmt.Errorf("%w: characteristic %q not in catalog", ErrUnknownType, typ)
	}
	out := *def
	out.Perms = append([]string(nil), def.Perms...)
	return out, nil
}

// LookupService resolves a service type and returns a copy of its
// catalog entry.
func LookupService(typ string) (ServiceDef, error) {
	u, err := ServiceUUID(typ)
	if err != nil {
		return ServiceDef{}, err
	}
	def, ok := load().svcByUUID[u]
	if !ok {
		return ServiceDef{}, fmt.Errorf("%w: service %q not in catalog", ErrUnknownType, typ)
	}
	out := *def
	out.Required = append([]string(nil), def.Required...)
	out.Optional = append([]string(nil), def.Optional...)
	return out, nil
}

// RequiredCharacteristics returns the canonical UUIDs of the
// characteristics a service of the given type must carry, in catalog
// order. Vendor service types have no catalog entry and report
// ErrUnknownType.
func RequiredCharacteristics(typ string) ([]string, error) {
	def, err := LookupService(typ)
	if err != nil {
		return nil, err
	}
	return charNamesToUUIDs(def.Required), nil
}

// OptionalCharacteristics returns the canonical UUIDs of the optional
// characteristics recorded for a service type, in catalog order.
func OptionalCharacteristics(typ string) ([]string, error) {
	def, err := LookupService(typ)
	if err != nil {
		return nil, err
	}
	return charNamesToUUIDs(def.Optional), nil
}

func charNamesToUUIDs(names []string) []string {
	t := load()
	uuids := make([]string, 0, len(names))
	for _, name := range names {
		// Cross-validated at load time, so the entry always exists.
		uuids = append(uuids, t.charByName[name].UUID)
	}
	return uuids
}

// Characteristics returns copies of all characteristic catalog entries
// in catalog order.
func Characteristics() []CharacteristicDef {
	t := load()
	out := make([]CharacteristicDef, 0, len(t.chars))
	for _, def := range t.chars {
		c := *def
		c.Perms = append([]string(nil), def.Perms...)
		out = append(out, c)
	}
	return out
}

// Services returns copies of all service catalog entries in catalog
// order.
func Services() []ServiceDef {
	t := load()
	out := make([]ServiceDef, 0, len(t.services))
	for _, def := range t.services {
		s := *def
		s.Required = append([]string(nil), def.Required...)
		s.Optional = append([]string(nil), def.Optional...)
		out = append(out, s)
	}
	return out
}

// ShortUUID collapses a full UUID carrying the Apple base suffix to its
// short hex code with leading zeros stripped. Any other UUID is
// returned unchanged.
func ShortUUID(u string) string {
	upper := strings.ToUpper(u)
	if !strings.HasSuffix(upper, baseUUIDSuffix) {
		return u
	}
	head := strings.TrimSuffix(upper, baseUUIDSuffix)
	if len(head) != 8 {
		return u
	}
	short := strings.TrimLeft(head, "0")
	if short == "" {
		short = "0"
	}
	if _, err := strconv.ParseUint(short, 16, 32); err != nil {
		return u
	}
	return short
}
