package hap_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/hap-protocol/hap-go/internal/fixtures"
	"github.com/hap-protocol/hap-go/pkg/discovery"
	"github.com/hap-protocol/hap-go/pkg/log"
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/registry"
	"github.com/hap-protocol/hap-go/pkg/store"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// TestE2E_SaveLoadQuery tests that a bridge database survives a save
// and reload and still answers queries.
func TestE2E_SaveLoadQuery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := fixtures.BridgeDatabase()
	path := filepath.Join(t.TempDir(), "accessories.json")
	file := store.NewDatabase(path, nil)

	if err := file.Save(db); err != nil {
		t.Fatalf("Failed to save database: %v", err)
	}
	loaded, err := file.Load()
	if err != nil {
		t.Fatalf("Failed to load database: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned no database")
	}
	if loaded.Len() != db.Len() {
		t.Errorf("loaded %d accessories, want %d", loaded.Len(), db.Len())
	}

	// Content hash must survive the round trip
	before, err := store.HashDocument(db.Document())
	if err != nil {
		t.Fatalf("Failed to hash database: %v", err)
	}
	after, err := store.HashDocument(loaded.Document())
	if err != nil {
		t.Fatalf("Failed to hash loaded database: %v", err)
	}
	if before != after {
		t.Errorf("hash changed across save/load: %s != %s", before, after)
	}

	// Query the lamp by type and state
	lamp, err := loaded.AID(2)
	if err != nil {
		t.Fatalf("Failed to look up lamp: %v", err)
	}
	svc := lamp.FirstService(model.ServiceQuery{
		Type:            registry.ServiceLightbulb,
		Characteristics: map[string]any{registry.CharacteristicOn: true},
	})
	if svc == nil {
		t.Fatal("lightbulb with on=true not found after reload")
	}

	// Linked services survive
	panel, err := loaded.AID(4)
	if err != nil {
		t.Fatalf("Failed to look up panel: %v", err)
	}
	label := panel.FirstService(model.ServiceQuery{Type: registry.ServiceServiceLabel})
	if label == nil {
		t.Fatal("service label not found after reload")
	}
	buttons := panel.FilterServices(model.ServiceQuery{Child: label})
	if len(buttons) != 2 {
		t.Errorf("services linking to label = %d, want 2", len(buttons))
	}
	for _, button := range buttons {
		parents := panel.FilterServices(model.ServiceQuery{Parent: button})
		if len(parents) != 1 || parents[0].IID() != label.IID() {
			t.Errorf("button %d does not link back to label", button.IID())
		}
	}
}

// TestE2E_SnapshotRoundTrip tests the CBOR snapshot path end to end.
func TestE2E_SnapshotRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := fixtures.BridgeDatabase()
	snap := store.NewSnapshotStore(filepath.Join(t.TempDir(), "accessories.snapshot"), nil)

	if err := snap.Save(db); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}
	loaded, err := snap.Load()
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	before, err := store.HashDocument(db.Document())
	if err != nil {
		t.Fatalf("Failed to hash database: %v", err)
	}
	after, err := store.HashDocument(loaded.Document())
	if err != nil {
		t.Fatalf("Failed to hash loaded database: %v", err)
	}
	if before != after {
		t.Errorf("hash changed across snapshot: %s != %s", before, after)
	}

	// Float values survive the CBOR encoding
	thermo, err := loaded.AID(3)
	if err != nil {
		t.Fatalf("Failed to look up thermostat: %v", err)
	}
	svc := thermo.FirstService(model.ServiceQuery{Type: registry.ServiceThermostat})
	if svc == nil {
		t.Fatal("thermostat service not found after snapshot load")
	}
	temp, err := svc.Value(registry.CharacteristicCurrentTemperature)
	if err != nil {
		t.Fatalf("Failed to read temperature: %v", err)
	}
	if temp != 21.5 {
		t.Errorf("temperature = %v, want 21.5", temp)
	}
}

// TestE2E_DocumentRoundTrip tests that a parsed document rebuilt from
// the model hashes identically on every pass.
func TestE2E_DocumentRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	doc, err := wire.DecodeDocument([]byte(fixtures.LightbulbDocumentJSON))
	if err != nil {
		t.Fatalf("Failed to decode document: %v", err)
	}
	db, err := model.FromDocument(doc)
	if err != nil {
		t.Fatalf("Failed to build database: %v", err)
	}

	first := db.Document()
	db2, err := model.FromDocument(first)
	if err != nil {
		t.Fatalf("Failed to rebuild database: %v", err)
	}
	second := db2.Document()

	h1, err := store.HashDocument(first)
	if err != nil {
		t.Fatalf("Failed to hash first pass: %v", err)
	}
	h2, err := store.HashDocument(second)
	if err != nil {
		t.Fatalf("Failed to hash second pass: %v", err)
	}
	if h1 != h2 {
		t.Errorf("round trip not lossless: %s != %s", h1, h2)
	}
}

// TestE2E_StoreEventLog tests that store operations land in the event
// log and can be read back filtered.
func TestE2E_StoreEventLog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "events.cborlog")
	logger, err := log.NewFileLogger(logPath)
	if err != nil {
		t.Fatalf("Failed to create file logger: %v", err)
	}

	file := store.NewDatabase(filepath.Join(dir, "accessories.json"), logger)
	if err := file.Save(fixtures.BridgeDatabase()); err != nil {
		t.Fatalf("Failed to save database: %v", err)
	}
	if _, err := file.Load(); err != nil {
		t.Fatalf("Failed to load database: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}

	src := log.SourceStore
	reader, err := log.NewFilteredReader(logPath, log.Filter{Source: &src})
	if err != nil {
		t.Fatalf("Failed to open log reader: %v", err)
	}
	defer reader.Close()

	var events []log.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Failed to read event: %v", err)
		}
		events = append(events, event)
	}

	if len(events) != 2 {
		t.Fatalf("store events = %d, want 2", len(events))
	}
	if events[0].Snapshot == nil || events[0].Snapshot.Kind != log.SnapshotSave {
		t.Errorf("first event = %+v, want save", events[0].Snapshot)
	}
	if events[1].Snapshot == nil || events[1].Snapshot.Kind != log.SnapshotLoad {
		t.Errorf("second event = %+v, want load", events[1].Snapshot)
	}
	for _, event := range events {
		if event.Snapshot.Accessories != 3 {
			t.Errorf("event accessory count = %d, want 3", event.Snapshot.Accessories)
		}
	}
}

// TestE2E_Discovery tests that an advertised accessory can be found
// over mDNS by its device id.
func TestE2E_Discovery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Setup: advertise a fake bridge
	advertiser, err := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{})
	if err != nil {
		t.Fatalf("Failed to create advertiser: %v", err)
	}
	defer advertiser.StopAll()

	info := &discovery.AccessoryInfo{
		DeviceID:     "AA:BB:CC:DD:EE:FF",
		Name:         "Test Bridge",
		Model:        "Bridge1,1",
		Category:     discovery.CategoryBridge,
		StatusFlags:  discovery.StatusUnpaired,
		ConfigNumber: 1,
		StateNumber:  1,
		Port:         51826,
	}
	if err := advertiser.Advertise(ctx, info); err != nil {
		t.Fatalf("Failed to advertise: %v", err)
	}

	// Give mDNS time to propagate
	time.Sleep(500 * time.Millisecond)

	browser, err := discovery.NewMDNSBrowser(discovery.BrowserConfig{BrowseTimeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("Failed to create browser: %v", err)
	}
	defer browser.Stop()

	browseCtx, browseCancel := context.WithTimeout(ctx, 5*time.Second)
	defer browseCancel()

	found, err := browser.FindByDeviceID(browseCtx, "AA:BB:CC:DD:EE:FF")
	if err != nil {
		t.Fatalf("Failed to find accessory: %v", err)
	}
	if found.DeviceID != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("device id = %q, want AA:BB:CC:DD:EE:FF", found.DeviceID)
	}
	if found.Category != discovery.CategoryBridge {
		t.Errorf("category = %v, want bridge", found.Category)
	}
	if found.StatusFlags.Paired() {
		t.Error("accessory reported paired, want unpaired")
	}
	if found.Port != 51826 {
		t.Errorf("port = %d, want 51826", found.Port)
	}
}
