package store

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hap-protocol/hap-go/pkg/log"
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// Database manages persistence of an accessory database to a JSON file.
type Database struct {
	mu     sync.Mutex
	path   string
	logger log.Logger
}

// NewDatabase creates a new database store. A nil logger disables
// event logging.
func NewDatabase(path string, logger log.Logger) *Database {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Database{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (d *Database) Path() string {
	return d.path
}

// Save persists the accessory database to disk as indented JSON.
func (d *Database) Save(accs *model.Accessories) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return err
	}

	doc := accs.Document()
	data, err := wire.EncodeDocumentIndent(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return err
	}

	d.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceStore,
		Category:  log.CategorySnapshot,
		Snapshot: &log.SnapshotEvent{
			Kind:        log.SnapshotSave,
			Path:        d.path,
			Accessories: len(doc.Accessories),
			Bytes:       len(data),
		},
	})
	return nil
}

// Load reads the accessory database from disk.
// Returns nil, nil if the file doesn't exist (empty database).
func (d *Database) Load() (*model.Accessories, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	doc, err := wire.DecodeDocument(data)
	if err != nil {
		return nil, d.loadError(err)
	}
	accs, err := model.FromDocument(doc)
	if err != nil {
		return nil, d.loadError(err)
	}

	d.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceStore,
		Category:  log.CategorySnapshot,
		Snapshot: &log.SnapshotEvent{
			Kind:        log.SnapshotLoad,
			Path:        d.path,
			Accessories: len(doc.Accessories),
			Bytes:       len(data),
		},
	})
	return accs, nil
}

// Clear removes the database file.
func (d *Database) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := os.Remove(d.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *Database) loadError(err error) error {
	d.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceStore,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Source:  log.SourceStore,
			Message: err.Error(),
			Context: "Load",
		},
	})
	return err
}
