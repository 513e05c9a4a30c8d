package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// lightbulbJSON is the wire form of a lightbulb accessory built with
// NewAccessoryWithInfo on a fresh id generator.
const lightbulbJSON = `{"accessories":[{"aid":2,"services":[` +
	`{"iid":1,"type":"0000003E-0000-1000-8000-0026BB765291","characteristics":[` +
	`{"iid":2,"type":"00000014-0000-1000-8000-0026BB765291","perms":["pw"],"format":"bool","description":"Identify"},` +
	`{"iid":3,"type":"00000023-0000-1000-8000-0026BB765291","perms":["pr"],"format":"string","value":"Light"},` +
	`{"iid":4,"type":"00000020-0000-1000-8000-0026BB765291","perms":["pr"],"format":"string","value":"Acme"},` +
	`{"iid":5,"type":"00000021-0000-1000-8000-0026BB765291","perms":["pr"],"format":"string","value":"X1"},` +
	`{"iid":6,"type":"00000030-0000-1000-8000-0026BB765291","perms":["pr"],"format":"string","value":"001"},` +
	`{"iid":7,"type":"00000052-0000-1000-8000-0026BB765291","perms":["pr"],"format":"string","value":"1.0"}` +
	`],"linked":[]},` +
	`{"iid":8,"type":"00000043-0000-1000-8000-0026BB765291","characteristics":[` +
	`{"iid":9,"type":"00000025-0000-1000-8000-0026BB765291","perms":["pr","pw","ev"],"format":"bool","value":false}` +
	`],"linked":[]}]}]}`

func newLightbulbAccessories(t *testing.T) *Accessories {
	t.Helper()
	acc, err := NewAccessoryWithInfo("Light", "Acme", "X1", "001", "1.0")
	if err != nil {
		t.Fatalf("NewAccessoryWithInfo: %v", err)
	}
	bulb, err := acc.AddService("lightbulb", nil)
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if _, err := bulb.AddCharacteristic("on", CharacteristicMetadata{Value: false}); err != nil {
		t.Fatalf("AddCharacteristic: %v", err)
	}

	accs := NewAccessories()
	accs.Add(acc)
	return accs
}

// --- serialization ---

func TestAccessories_MarshalJSON(t *testing.T) {
	withFreshIDs(t)

	accs := newLightbulbAccessories(t)
	data, err := json.Marshal(accs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, []byte(lightbulbJSON)) {
		t.Errorf("Marshal mismatch:\n got %s\nwant %s", data, lightbulbJSON)
	}
}

func TestAccessories_UnmarshalJSON(t *testing.T) {
	withFreshIDs(t)

	accs := NewAccessories()
	if err := json.Unmarshal([]byte(lightbulbJSON), accs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	acc, err := accs.AID(2)
	if err != nil {
		t.Fatalf("AID(2): %v", err)
	}
	bulb := acc.FirstService(ServiceQuery{Type: "lightbulb"})
	if bulb == nil {
		t.Fatalf("no lightbulb service after Unmarshal")
	}
	on, err := bulb.Value("on")
	if err != nil {
		t.Fatalf("Value(on): %v", err)
	}
	if on != false {
		t.Errorf("Value(on) = %v (%T), want false", on, on)
	}

	// A load and store round trip reproduces the document.
	data, err := json.Marshal(accs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, []byte(lightbulbJSON)) {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", data, lightbulbJSON)
	}
}

func TestFromDocument_ShortTypesAreCanonicalized(t *testing.T) {
	withFreshIDs(t)

	doc := &wire.Document{Accessories: []wire.AccessoryRecord{{
		AID: 2,
		Services: []wire.ServiceRecord{{
			IID:  1,
			Type: "43",
			Characteristics: []wire.CharacteristicRecord{{
				IID:    2,
				Type:   "25",
				Perms:  []wire.Permission{wire.PermissionRead},
				Format: wire.FormatBool,
				Value:  true,
			}},
		}},
	}}}

	accs, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	acc, err := accs.AID(2)
	if err != nil {
		t.Fatalf("AID(2): %v", err)
	}
	svc := acc.Services()[0]
	if got := svc.Type(); got != registry.ServiceLightbulb {
		t.Errorf("service type = %q, want %q", got, registry.ServiceLightbulb)
	}
	char := svc.Characteristics()[0]
	if got := char.Type(); got != registry.CharacteristicOn {
		t.Errorf("characteristic type = %q, want %q", got, registry.CharacteristicOn)
	}
}

func TestFromDocument_ForeignValueSurvivesRoundTrip(t *testing.T) {
	withFreshIDs(t)

	// A value that does not fit its format is kept verbatim.
	doc := &wire.Document{Accessories: []wire.AccessoryRecord{{
		AID: 2,
		Services: []wire.ServiceRecord{{
			IID:  1,
			Type: "lightbulb",
			Characteristics: []wire.CharacteristicRecord{{
				IID:    2,
				Type:   "on",
				Perms:  []wire.Permission{wire.PermissionRead},
				Format: wire.FormatBool,
				Value:  "yes",
			}},
		}},
	}}}

	accs, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	out := accs.Document()
	if got := out.Accessories[0].Services[0].Characteristics[0].Value; got != "yes" {
		t.Errorf("value = %v (%T), want %q verbatim", got, got, "yes")
	}
}

func TestFromDocument_DanglingLink(t *testing.T) {
	withFreshIDs(t)

	doc := &wire.Document{Accessories: []wire.AccessoryRecord{{
		AID: 2,
		Services: []wire.ServiceRecord{{
			IID:    1,
			Type:   "lightbulb",
			Linked: []uint64{99},
		}},
	}}}

	if _, err := FromDocument(doc); !errors.Is(err, ErrNotFound) {
		t.Errorf("FromDocument error = %v, want ErrNotFound", err)
	}
}

func TestFromDocument_Malformed(t *testing.T) {
	withFreshIDs(t)

	doc := &wire.Document{Accessories: []wire.AccessoryRecord{{
		AID: 0,
	}}}
	if _, err := FromDocument(doc); !errors.Is(err, wire.ErrMalformedRecord) {
		t.Errorf("FromDocument error = %v, want ErrMalformedRecord", err)
	}
}

// --- links ---

func TestAccessories_LinkedRoundTrip(t *testing.T) {
	withFreshIDs(t)

	acc := NewAccessory()
	button, err := acc.AddService("stateless-programmable-switch", nil)
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	label, err := acc.AddService("service-label", nil)
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	button.AddLinkedService(label)

	accs := NewAccessories()
	accs.Add(acc)

	doc := accs.Document()
	if got := doc.Accessories[0].Services[0].Linked; len(got) != 1 || got[0] != label.IID() {
		t.Fatalf("serialized linked = %v, want [%d]", got, label.IID())
	}

	reloaded, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	racc, err := reloaded.AID(acc.AID())
	if err != nil {
		t.Fatalf("AID: %v", err)
	}
	rbutton, err := racc.ServiceByIID(button.IID())
	if err != nil {
		t.Fatalf("ServiceByIID: %v", err)
	}
	linked := rbutton.Linked()
	if len(linked) != 1 || linked[0].IID() != label.IID() {
		t.Fatalf("reloaded linked = %v, want the label service", linked)
	}
}

// --- id continuity ---

func TestFromDocument_AdvancesIDGenerators(t *testing.T) {
	withFreshIDs(t)

	doc, err := wire.DecodeDocument([]byte(lightbulbJSON))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	accs, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	// New accessories continue past the largest loaded aid.
	if got := NewAccessory().AID(); got != 3 {
		t.Errorf("next AID = %d, want 3", got)
	}

	// New services continue past the largest loaded instance id.
	acc, err := accs.AID(2)
	if err != nil {
		t.Fatalf("AID(2): %v", err)
	}
	svc, err := acc.AddService("switch", nil)
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if got := svc.IID(); got != 10 {
		t.Errorf("next IID = %d, want 10", got)
	}
}

// --- container ---

func TestAccessories_AID(t *testing.T) {
	withFreshIDs(t)

	accs := NewAccessories()
	first := NewAccessory()
	second := NewAccessory()
	accs.Add(first)
	accs.Add(second)

	if got := accs.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	got, err := accs.AID(3)
	if err != nil {
		t.Fatalf("AID(3): %v", err)
	}
	if got != second {
		t.Errorf("AID(3) returned a different accessory")
	}
	if _, err := accs.AID(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("AID(42) error = %v, want ErrNotFound", err)
	}
}
