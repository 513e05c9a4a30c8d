package interactive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hap-protocol/hap-go/pkg/inspect"
	"github.com/hap-protocol/hap-go/pkg/log"
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/registry"
)

// testShell builds a shell over a one-accessory database without a
// readline instance, capturing output in a buffer.
func testShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()

	acc := model.NewAccessoryWithAID(2)
	if _, err := acc.AddService(registry.ServiceAccessoryInformation, &model.ServiceOptions{Name: "Desk Lamp"}); err != nil {
		t.Fatalf("AddService: %v", err)
	}
	svc, err := acc.AddService(registry.ServiceLightbulb, nil)
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if _, err := svc.AddCharacteristic(registry.CharacteristicOn, model.CharacteristicMetadata{Value: true}); err != nil {
		t.Fatalf("AddCharacteristic: %v", err)
	}

	db := model.NewAccessories()
	db.Add(acc)

	buf := &bytes.Buffer{}
	s := &Shell{
		db:        db,
		logger:    log.NoopLogger{},
		inspector: inspect.NewInspector(db),
		formatter: inspect.NewFormatter(),
		out:       buf,
	}
	return s, buf
}

func TestDispatchEmpty(t *testing.T) {
	s, buf := testShell(t)
	if !s.dispatch("") {
		t.Error("empty input should not exit")
	}
	if !s.dispatch("   ") {
		t.Error("blank input should not exit")
	}
	if buf.Len() != 0 {
		t.Errorf("blank input produced output: %q", buf.String())
	}
}

func TestDispatchExit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit", "q", "EXIT"} {
		s, buf := testShell(t)
		if s.dispatch(cmd) {
			t.Errorf("dispatch(%q) = true, want false", cmd)
		}
		if !strings.Contains(buf.String(), "Exiting") {
			t.Errorf("dispatch(%q) output = %q, want exit message", cmd, buf.String())
		}
	}
}

func TestDispatchUnknown(t *testing.T) {
	s, buf := testShell(t)
	if !s.dispatch("frobnicate") {
		t.Error("unknown command should not exit")
	}
	if !strings.Contains(buf.String(), "Unknown command: frobnicate") {
		t.Errorf("output = %q, want unknown command message", buf.String())
	}
}

func TestDispatchHelp(t *testing.T) {
	s, buf := testShell(t)
	s.dispatch("help")
	if !strings.Contains(buf.String(), "HAP Database Commands") {
		t.Errorf("help output missing header: %q", buf.String())
	}
}

func TestCmdList(t *testing.T) {
	s, buf := testShell(t)
	s.dispatch("list")
	out := buf.String()
	if !strings.Contains(out, "Accessories: 1") {
		t.Errorf("list output missing count: %q", out)
	}
	if !strings.Contains(out, "Accessory 2: Desk Lamp") {
		t.Errorf("list output missing accessory header: %q", out)
	}
}

func TestCmdShow(t *testing.T) {
	s, buf := testShell(t)

	s.dispatch("show 2")
	if !strings.Contains(buf.String(), "Accessory 2: Desk Lamp") {
		t.Errorf("show output = %q", buf.String())
	}

	buf.Reset()
	s.dispatch("show abc")
	if !strings.Contains(buf.String(), "Invalid aid") {
		t.Errorf("show abc output = %q, want invalid aid", buf.String())
	}

	buf.Reset()
	s.dispatch("show 99")
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("show 99 output = %q, want error", buf.String())
	}

	buf.Reset()
	s.dispatch("show")
	if !strings.Contains(buf.String(), "Usage: show") {
		t.Errorf("bare show output = %q, want usage", buf.String())
	}
}

func TestCmdServices(t *testing.T) {
	s, buf := testShell(t)
	s.dispatch("services 2")
	out := buf.String()
	if !strings.Contains(out, "[1] accessory-information") {
		t.Errorf("services output missing information service: %q", out)
	}
	if !strings.Contains(out, "[3] lightbulb - 1 characteristics") {
		t.Errorf("services output missing lightbulb: %q", out)
	}
}

func TestCmdFind(t *testing.T) {
	s, buf := testShell(t)

	// All three spellings of the type resolve to the same services.
	for _, typ := range []string{"lightbulb", "43", "00000043-0000-1000-8000-0026BB765291"} {
		buf.Reset()
		s.dispatch("find " + typ)
		if !strings.Contains(buf.String(), "accessory 2, service 3: lightbulb") {
			t.Errorf("find %s output = %q", typ, buf.String())
		}
	}

	buf.Reset()
	s.dispatch("find thermostat")
	if !strings.Contains(buf.String(), "No matching services") {
		t.Errorf("find thermostat output = %q", buf.String())
	}

	buf.Reset()
	s.dispatch("find no-such-type")
	if !strings.Contains(buf.String(), "No matching services") {
		t.Errorf("unresolvable type output = %q", buf.String())
	}
}

func TestCmdLinked(t *testing.T) {
	s, buf := testShell(t)

	s.dispatch("linked 2 3")
	if !strings.Contains(buf.String(), "No linked services") {
		t.Errorf("linked output = %q", buf.String())
	}

	// Link the lightbulb to the information service and look again.
	acc, err := s.db.AID(2)
	if err != nil {
		t.Fatalf("AID: %v", err)
	}
	bulb, err := acc.ServiceByIID(3)
	if err != nil {
		t.Fatalf("ServiceByIID: %v", err)
	}
	info, err := acc.ServiceByIID(1)
	if err != nil {
		t.Fatalf("ServiceByIID: %v", err)
	}
	bulb.AddLinkedService(info)

	buf.Reset()
	s.dispatch("linked 2 3")
	if !strings.Contains(buf.String(), "Service 1: accessory-information") {
		t.Errorf("linked output = %q, want linked service header", buf.String())
	}
}

func TestCmdValue(t *testing.T) {
	s, buf := testShell(t)

	s.dispatch("value 2 4")
	if !strings.Contains(buf.String(), "on = true") {
		t.Errorf("value read output = %q", buf.String())
	}

	buf.Reset()
	s.dispatch("value 2 4 false")
	if !strings.Contains(buf.String(), "on = false") {
		t.Errorf("value write output = %q", buf.String())
	}

	// An integer does not fit a bool characteristic.
	buf.Reset()
	s.dispatch("value 2 4 1")
	if !strings.Contains(buf.String(), "Write failed") {
		t.Errorf("bad write output = %q", buf.String())
	}

	// iid 3 names the service, not a characteristic.
	buf.Reset()
	s.dispatch("value 2 3")
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("service iid output = %q", buf.String())
	}
}

func TestCmdHash(t *testing.T) {
	s, buf := testShell(t)
	s.dispatch("hash")
	hash := strings.TrimSpace(buf.String())
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars: %q", len(hash), hash)
	}
}

func TestCmdNew(t *testing.T) {
	s, buf := testShell(t)

	s.dispatch("new")
	if !strings.Contains(buf.String(), "Usage: new") {
		t.Errorf("bare new output = %q", buf.String())
	}

	before := s.db.Len()
	buf.Reset()
	s.dispatch("new Heater Acme H-1 0002 2.0.0")
	if !strings.Contains(buf.String(), "created") {
		t.Errorf("new output = %q", buf.String())
	}
	if got := s.db.Len(); got != before+1 {
		t.Errorf("Len() = %d, want %d", got, before+1)
	}
}

func TestCmdSaveLoad(t *testing.T) {
	s, buf := testShell(t)

	s.dispatch("save")
	if !strings.Contains(buf.String(), "No database file open") {
		t.Errorf("bare save output = %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "accessories.json")
	buf.Reset()
	s.dispatch("save " + path)
	if !strings.Contains(buf.String(), "Saved 1 accessories") {
		t.Errorf("save output = %q", buf.String())
	}

	fresh, freshBuf := testShell(t)
	fresh.dispatch("load " + path)
	if !strings.Contains(freshBuf.String(), "Loaded 1 accessories") {
		t.Errorf("load output = %q", freshBuf.String())
	}

	missing := filepath.Join(t.TempDir(), "missing.json")
	freshBuf.Reset()
	fresh.dispatch("load " + missing)
	if !strings.Contains(freshBuf.String(), "starting empty") {
		t.Errorf("missing load output = %q", freshBuf.String())
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"2.5", 2.5},
		{"true", true},
		{"false", false},
		{`"Desk Lamp"`, "Desk Lamp"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.raw); got != tt.want {
			t.Errorf("parseValue(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}
