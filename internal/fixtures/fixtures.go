// Package fixtures provides pre-built accessory databases and wire
// documents shared by tests in other packages. Accessory ids and
// instance ids are assigned deterministically, so tests can pin ids
// and rendered output against the shapes documented here.
package fixtures

import (
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/registry"
)

// must unwraps builder errors. The builders only feed catalog types
// and matching values, so a failure here is a broken build.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// addInformation populates the accessory information service the way
// a bridge would. On a fresh accessory the service takes iid 1 and
// its characteristics iids 2 through 7.
func addInformation(acc *model.Accessory, name, manufacturer, modelName, serial string) *model.Service {
	svc := must(acc.AddService(registry.ServiceAccessoryInformation, nil))
	must(svc.AddCharacteristic(registry.CharacteristicIdentify, model.CharacteristicMetadata{Description: "Identify"}))
	values := []struct {
		typ   string
		value string
	}{
		{registry.CharacteristicName, name},
		{registry.CharacteristicManufacturer, manufacturer},
		{registry.CharacteristicModel, modelName},
		{registry.CharacteristicSerialNumber, serial},
		{registry.CharacteristicFirmwareRevision, "1.0.0"},
	}
	for _, v := range values {
		must(svc.AddCharacteristic(v.typ, model.CharacteristicMetadata{Value: v.value}))
	}
	return svc
}

// LightbulbAccessory returns a dimmable lamp named "Desk Lamp". The
// information service takes iids 1 through 7, the lightbulb service
// iid 8 with on at iid 9 (true) and brightness at iid 10 (80).
func LightbulbAccessory(aid uint64) *model.Accessory {
	acc := model.NewAccessoryWithAID(aid)
	addInformation(acc, "Desk Lamp", "Acme", "L100", "L100-0042")
	svc := must(acc.AddService(registry.ServiceLightbulb, nil))
	must(svc.AddCharacteristic(registry.CharacteristicOn, model.CharacteristicMetadata{Value: true}))
	must(svc.AddCharacteristic(registry.CharacteristicBrightness, model.CharacteristicMetadata{Value: int64(80)}))
	return acc
}

// ThermostatAccessory returns a thermostat named "Hall Thermostat"
// with every required characteristic populated. The thermostat
// service takes iid 8, its characteristics iids 9 through 13.
func ThermostatAccessory(aid uint64) *model.Accessory {
	acc := model.NewAccessoryWithAID(aid)
	addInformation(acc, "Hall Thermostat", "Acme", "T200", "T200-0007")
	svc := must(acc.AddService(registry.ServiceThermostat, nil))
	must(svc.AddCharacteristic(registry.CharacteristicCurrentHeatingCoolingState, model.CharacteristicMetadata{Value: int64(1)}))
	must(svc.AddCharacteristic(registry.CharacteristicTargetHeatingCoolingState, model.CharacteristicMetadata{Value: int64(1)}))
	must(svc.AddCharacteristic(registry.CharacteristicCurrentTemperature, model.CharacteristicMetadata{Value: 21.5}))
	must(svc.AddCharacteristic(registry.CharacteristicTargetTemperature, model.CharacteristicMetadata{Value: 22.0}))
	must(svc.AddCharacteristic(registry.CharacteristicTemperatureDisplayUnits, model.CharacteristicMetadata{Value: int64(0)}))
	return acc
}

// SwitchPanelAccessory returns a two button scene panel whose
// stateless programmable switch services link to a shared service
// label. The label takes iid 8, the buttons iids 10 and 13.
func SwitchPanelAccessory(aid uint64) *model.Accessory {
	acc := model.NewAccessoryWithAID(aid)
	addInformation(acc, "Scene Panel", "Acme", "P300", "P300-0099")
	label := must(acc.AddService(registry.ServiceServiceLabel, nil))
	must(label.AddCharacteristic(registry.CharacteristicServiceLabelNamespace, model.CharacteristicMetadata{Value: int64(1)}))
	for i := int64(1); i <= 2; i++ {
		button := must(acc.AddService(registry.ServiceStatelessProgrammableSwitch, nil))
		must(button.AddCharacteristic(registry.CharacteristicProgrammableSwitchEvent, model.CharacteristicMetadata{}))
		must(button.AddCharacteristic(registry.CharacteristicServiceLabelIndex, model.CharacteristicMetadata{Value: i}))
		button.AddLinkedService(label)
	}
	return acc
}

// BridgeDatabase returns a database of three accessories as a bridge
// would publish them: the lamp at aid 2, the thermostat at aid 3 and
// the scene panel at aid 4.
func BridgeDatabase() *model.Accessories {
	ids := model.NewAccessoryIDGenerator(model.FirstAccessoryID)
	db := model.NewAccessories()
	db.Add(LightbulbAccessory(ids.Next()))
	db.Add(ThermostatAccessory(ids.Next()))
	db.Add(SwitchPanelAccessory(ids.Next()))
	return db
}

// LightbulbDocumentJSON is the serialized form of a one lamp database
// matching LightbulbAccessory(2).
const LightbulbDocumentJSON = `{
  "accessories": [
    {
      "aid": 2,
      "services": [
        {
          "iid": 1,
          "type": "0000003E-0000-1000-8000-0026BB765291",
          "characteristics": [
            {"iid": 2, "type": "00000014-0000-1000-8000-0026BB765291", "perms": ["pw"], "format": "bool", "description": "Identify"},
            {"iid": 3, "type": "00000023-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "string", "value": "Desk Lamp"},
            {"iid": 4, "type": "00000020-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "string", "value": "Acme"},
            {"iid": 5, "type": "00000021-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "string", "value": "L100"},
            {"iid": 6, "type": "00000030-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "string", "value": "L100-0042"},
            {"iid": 7, "type": "00000052-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "string", "value": "1.0.0"}
          ],
          "linked": []
        },
        {
          "iid": 8,
          "type": "00000043-0000-1000-8000-0026BB765291",
          "characteristics": [
            {"iid": 9, "type": "00000025-0000-1000-8000-0026BB765291", "perms": ["pr", "pw", "ev"], "format": "bool", "value": true},
            {"iid": 10, "type": "00000008-0000-1000-8000-0026BB765291", "perms": ["pr", "pw", "ev"], "format": "int", "value": 80, "unit": "percentage"}
          ],
          "linked": []
        }
      ]
    }
  ]
}`

// PanelDocumentJSON is a serialized scene panel whose button services
// appear before the service label they link to, so loading it
// exercises forward link resolution.
const PanelDocumentJSON = `{
  "accessories": [
    {
      "aid": 4,
      "services": [
        {
          "iid": 10,
          "type": "00000089-0000-1000-8000-0026BB765291",
          "characteristics": [
            {"iid": 11, "type": "00000073-0000-1000-8000-0026BB765291", "perms": ["pr", "ev"], "format": "uint8"},
            {"iid": 12, "type": "000000CB-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "uint8", "value": 1}
          ],
          "linked": [8]
        },
        {
          "iid": 13,
          "type": "00000089-0000-1000-8000-0026BB765291",
          "characteristics": [
            {"iid": 14, "type": "00000073-0000-1000-8000-0026BB765291", "perms": ["pr", "ev"], "format": "uint8"},
            {"iid": 15, "type": "000000CB-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "uint8", "value": 2}
          ],
          "linked": [8]
        },
        {
          "iid": 8,
          "type": "000000CC-0000-1000-8000-0026BB765291",
          "characteristics": [
            {"iid": 9, "type": "000000CD-0000-1000-8000-0026BB765291", "perms": ["pr"], "format": "uint8", "value": 1}
          ],
          "linked": []
        }
      ]
    }
  ]
}`
