package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// TestLightbulbAccessory pins the iid layout documented on the builder.
func TestLightbulbAccessory(t *testing.T) {
	acc := LightbulbAccessory(2)

	assert.Equal(t, uint64(2), acc.AID())
	require.Len(t, acc.Services(), 2)

	info, err := acc.ServiceByIID(1)
	require.NoError(t, err)
	assert.Equal(t, registry.ServiceAccessoryInformation, info.Type())
	name, err := info.Value(registry.CharacteristicName)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", name)

	lamp, err := acc.ServiceByIID(8)
	require.NoError(t, err)
	assert.Equal(t, registry.ServiceLightbulb, lamp.Type())

	on, err := acc.CharacteristicByIID(9)
	require.NoError(t, err)
	assert.Equal(t, true, on.Value())

	brightness, err := acc.CharacteristicByIID(10)
	require.NoError(t, err)
	assert.Equal(t, int64(80), brightness.Value())
	assert.Equal(t, "percentage", brightness.Unit())
}

// TestThermostatAccessory checks that every characteristic the catalog
// marks required for a thermostat is present.
func TestThermostatAccessory(t *testing.T) {
	acc := ThermostatAccessory(3)

	svc := acc.FirstService(model.ServiceQuery{Type: registry.ServiceThermostat})
	require.NotNil(t, svc)

	required, err := registry.RequiredCharacteristics(registry.ServiceThermostat)
	require.NoError(t, err)
	for _, typ := range required {
		assert.True(t, svc.HasCharacteristic(typ), "missing %s", typ)
	}

	temp, err := svc.Value(registry.CharacteristicCurrentTemperature)
	require.NoError(t, err)
	assert.Equal(t, 21.5, temp)
}

// TestSwitchPanelAccessory checks the button services link to the
// shared service label.
func TestSwitchPanelAccessory(t *testing.T) {
	acc := SwitchPanelAccessory(4)

	buttons := acc.FilterServices(model.ServiceQuery{Type: registry.ServiceStatelessProgrammableSwitch})
	require.Len(t, buttons, 2)
	for _, button := range buttons {
		linked := button.Linked()
		require.Len(t, linked, 1)
		assert.Equal(t, uint64(8), linked[0].IID())
		assert.Equal(t, registry.ServiceServiceLabel, linked[0].Type())
	}
}

func TestBridgeDatabase(t *testing.T) {
	db := BridgeDatabase()

	assert.Equal(t, 3, db.Len())
	for _, aid := range []uint64{2, 3, 4} {
		_, err := db.AID(aid)
		assert.NoError(t, err)
	}

	// The builder allocates from its own generator, so a second
	// database carries the same ids.
	again := BridgeDatabase()
	assert.Equal(t, 3, again.Len())
	_, err := again.AID(2)
	assert.NoError(t, err)
}

// TestLightbulbDocumentJSON loads the canned document and checks it
// matches the shape LightbulbAccessory builds.
func TestLightbulbDocumentJSON(t *testing.T) {
	doc, err := wire.DecodeDocument([]byte(LightbulbDocumentJSON))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	db, err := model.FromDocument(doc)
	require.NoError(t, err)
	require.Equal(t, 1, db.Len())

	acc, err := db.AID(2)
	require.NoError(t, err)

	on, err := acc.CharacteristicByIID(9)
	require.NoError(t, err)
	assert.Equal(t, true, on.Value())

	brightness, err := acc.CharacteristicByIID(10)
	require.NoError(t, err)
	assert.Equal(t, int64(80), brightness.Value())
}

// TestPanelDocumentJSON loads a document whose services link forward
// to a service defined later in the array.
func TestPanelDocumentJSON(t *testing.T) {
	doc, err := wire.DecodeDocument([]byte(PanelDocumentJSON))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	db, err := model.FromDocument(doc)
	require.NoError(t, err)

	acc, err := db.AID(4)
	require.NoError(t, err)

	for _, iid := range []uint64{10, 13} {
		button, err := acc.ServiceByIID(iid)
		require.NoError(t, err)
		linked := button.Linked()
		require.Len(t, linked, 1)
		assert.Equal(t, uint64(8), linked[0].IID())
	}
}
