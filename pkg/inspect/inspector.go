// Package inspect renders an accessory database for human eyes.
//
// The Inspector turns model objects into plain display structs with
// catalog names resolved, and the Formatter renders those structs as an
// indented tree. Both are used by the interactive shell and are useful
// on their own for debugging.
package inspect

import (
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// Inspector extracts display information from an accessory database.
type Inspector struct {
	db *model.Accessories
}

// NewInspector creates a new Inspector for the given database.
func NewInspector(db *model.Accessories) *Inspector {
	return &Inspector{db: db}
}

// Database returns the underlying accessory database.
func (i *Inspector) Database() *model.Accessories {
	return i.db
}

// DatabaseTree represents the complete database structure for display.
type DatabaseTree struct {
	Accessories []AccessoryInfo
}

// AccessoryInfo represents accessory information for display.
type AccessoryInfo struct {
	AID uint64

	// Name is the accessory's display name, taken from the name
	// characteristic of its accessory information service. Empty when
	// the accessory carries none.
	Name string

	Services []ServiceInfo
}

// ServiceInfo represents service information for display.
type ServiceInfo struct {
	IID  uint64
	Type string

	// Name is the catalog name of the service type, empty for vendor
	// types.
	Name string

	// Linked holds the instance ids of linked services.
	Linked []uint64

	Characteristics []CharacteristicInfo
}

// CharacteristicInfo represents characteristic information for display.
type CharacteristicInfo struct {
	IID  uint64
	Type string

	// Name is the catalog name of the characteristic type, empty for
	// vendor types.
	Name string

	Format      wire.Format
	Perms       []wire.Permission
	Value       any
	Description string
	Unit        string
}

// InspectDatabase returns a complete tree of the database structure.
func (i *Inspector) InspectDatabase() *DatabaseTree {
	tree := &DatabaseTree{}
	for _, acc := range i.db.Accessories() {
		tree.Accessories = append(tree.Accessories, i.inspectAccessory(acc))
	}
	return tree
}

// InspectAccessory returns information about a specific accessory.
func (i *Inspector) InspectAccessory(aid uint64) (*AccessoryInfo, error) {
	acc, err := i.db.AID(aid)
	if err != nil {
		return nil, err
	}
	info := i.inspectAccessory(acc)
	return &info, nil
}

// InspectService returns information about a specific service.
func (i *Inspector) InspectService(aid, iid uint64) (*ServiceInfo, error) {
	acc, err := i.db.AID(aid)
	if err != nil {
		return nil, err
	}
	svc, err := acc.ServiceByIID(iid)
	if err != nil {
		return nil, err
	}
	info := i.inspectService(svc)
	return &info, nil
}

func (i *Inspector) inspectAccessory(acc *model.Accessory) AccessoryInfo {
	info := AccessoryInfo{
		AID:  acc.AID(),
		Name: accessoryName(acc),
	}
	for _, svc := range acc.Services() {
		info.Services = append(info.Services, i.inspectService(svc))
	}
	return info
}

func (i *Inspector) inspectService(svc *model.Service) ServiceInfo {
	name, _ := registry.ServiceDisplayName(svc.Type())
	info := ServiceInfo{
		IID:  svc.IID(),
		Type: svc.Type(),
		Name: name,
	}
	for _, linked := range svc.Linked() {
		info.Linked = append(info.Linked, linked.IID())
	}
	for _, char := range svc.Characteristics() {
		info.Characteristics = append(info.Characteristics, inspectCharacteristic(char))
	}
	return info
}

func inspectCharacteristic(char *model.Characteristic) CharacteristicInfo {
	name, _ := registry.CharacteristicDisplayName(char.Type())
	return CharacteristicInfo{
		IID:         char.IID(),
		Type:        char.Type(),
		Name:        name,
		Format:      char.Format(),
		Perms:       char.Perms(),
		Value:       char.Value(),
		Description: char.Description(),
		Unit:        char.Unit(),
	}
}

// accessoryName reads the display name from the accessory information
// service, or returns "" when the accessory carries none.
func accessoryName(acc *model.Accessory) string {
	svc := acc.FirstService(model.ServiceQuery{Type: registry.ServiceAccessoryInformation})
	if svc == nil {
		return ""
	}
	value, err := svc.Value(registry.CharacteristicName)
	if err != nil {
		return ""
	}
	if name, ok := value.(string); ok {
		return name
	}
	return ""
}
