package inspect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// Formatter renders inspection output as an indented tree.
type Formatter struct {
	// ShowMetadata includes format, permission, and unit information
	ShowMetadata bool

	// ShowIDs includes instance ids alongside names
	ShowIDs bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		ShowIDs:      true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// unitSuffixes maps catalog units to their display suffix.
var unitSuffixes = map[string]string{
	"celsius":    "°C",
	"percentage": "%",
	"arcdegrees": "°",
	"lux":        "lx",
	"seconds":    "s",
}

// UnitSuffix returns the display suffix for a catalog unit. Units
// without a shorthand display as themselves.
func UnitSuffix(unit string) string {
	if suffix, ok := unitSuffixes[unit]; ok {
		return suffix
	}
	return unit
}

// FormatValue formats a characteristic value for display. Values
// carry the canonical Go types the model stores, anything else falls
// through to %v.
func (f *Formatter) FormatValue(value any, unit string) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"

	case string:
		return fmt.Sprintf("%q", v)

	case int64:
		return f.withUnit(strconv.FormatInt(v, 10), unit)

	case uint64:
		return f.withUnit(strconv.FormatUint(v, 10), unit)

	case float64:
		return f.withUnit(fmt.Sprintf("%.2f", v), unit)

	case json.Number:
		return f.withUnit(v.String(), unit)

	case []byte:
		return fmt.Sprintf("0x%x", v)

	default:
		return fmt.Sprintf("%v", v)
	}
}

func (f *Formatter) withUnit(s, unit string) string {
	if unit == "" {
		return s
	}
	return s + " " + UnitSuffix(unit)
}

// FormatPerms joins permissions for display.
func FormatPerms(perms []wire.Permission) string {
	if len(perms) == 0 {
		return "none"
	}
	parts := make([]string, len(perms))
	for i, p := range perms {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

// DisplayServiceType returns the human name for a service type, using
// the shortened UUID for vendor types.
func DisplayServiceType(typ string) string {
	if name, ok := registry.ServiceDisplayName(typ); ok {
		return name
	}
	return registry.ShortUUID(typ)
}

// DisplayCharacteristicType returns the human name for a
// characteristic type, using the shortened UUID for vendor types.
func DisplayCharacteristicType(typ string) string {
	if name, ok := registry.CharacteristicDisplayName(typ); ok {
		return name
	}
	return registry.ShortUUID(typ)
}

// FormatDatabase renders the complete database tree.
func (f *Formatter) FormatDatabase(tree *DatabaseTree) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Accessories: %d\n", len(tree.Accessories)))
	for i := range tree.Accessories {
		sb.WriteString("---\n")
		sb.WriteString(f.FormatAccessory(&tree.Accessories[i]))
	}
	return sb.String()
}

// FormatAccessory renders one accessory and its services.
func (f *Formatter) FormatAccessory(acc *AccessoryInfo) string {
	var sb strings.Builder
	header := fmt.Sprintf("Accessory %d", acc.AID)
	if acc.Name != "" {
		header += ": " + acc.Name
	}
	sb.WriteString(header + "\n")
	for i := range acc.Services {
		sb.WriteString(f.formatService(1, &acc.Services[i]))
	}
	return sb.String()
}

// FormatService renders one service and its characteristics.
func (f *Formatter) FormatService(svc *ServiceInfo) string {
	return f.formatService(0, svc)
}

func (f *Formatter) formatService(depth int, svc *ServiceInfo) string {
	var sb strings.Builder
	header := displayName(svc.Name, svc.Type)
	if f.ShowIDs {
		header = fmt.Sprintf("Service %d: %s", svc.IID, header)
	} else {
		header = "Service: " + header
	}
	if len(svc.Linked) > 0 {
		header += fmt.Sprintf(" (linked: %s)", joinIIDs(svc.Linked))
	}
	sb.WriteString(f.Indent(depth, header) + "\n")
	for i := range svc.Characteristics {
		sb.WriteString(f.Indent(depth+1, f.characteristicLine(&svc.Characteristics[i])) + "\n")
	}
	return sb.String()
}

func (f *Formatter) characteristicLine(char *CharacteristicInfo) string {
	line := displayName(char.Name, char.Type)
	if f.ShowIDs {
		line = fmt.Sprintf("[%d] %s", char.IID, line)
	}
	if char.Value != nil {
		line += " = " + f.FormatValue(char.Value, char.Unit)
	}
	if f.ShowMetadata {
		line += fmt.Sprintf(" (%s, %s)", char.Format, FormatPerms(char.Perms))
	}
	return line
}

// displayName prefers the resolved catalog name, falling back to the
// shortened type for vendor UUIDs.
func displayName(name, typ string) string {
	if name != "" {
		return name
	}
	return registry.ShortUUID(typ)
}

func joinIIDs(iids []uint64) string {
	parts := make([]string, len(iids))
	for i, iid := range iids {
		parts[i] = strconv.FormatUint(iid, 10)
	}
	return strings.Join(parts, ", ")
}
