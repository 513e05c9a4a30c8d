package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hap-protocol/hap-go/pkg/log"
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/wire"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot was written by an
// unsupported format version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// ErrSnapshotCorrupt is returned when a snapshot's content hash does
// not match its document.
var ErrSnapshotCorrupt = errors.New("snapshot corrupt")

// Snapshot is the CBOR shape of a stored accessory database.
// CBOR encoding uses integer keys for compactness.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `cbor:"1,keyasint"`

	// SavedAt is when the snapshot was written (second precision).
	SavedAt time.Time `cbor:"2,keyasint"`

	// Hash is the BLAKE2b-256 hash (hex) of the canonical CBOR
	// encoding of Document.
	Hash string `cbor:"3,keyasint"`

	// Document is the accessory database in wire form.
	Document *wire.Document `cbor:"4,keyasint"`
}

// SnapshotStore manages persistence of an accessory database to a
// CBOR snapshot file.
type SnapshotStore struct {
	mu     sync.Mutex
	path   string
	logger log.Logger
}

// NewSnapshotStore creates a new snapshot store. A nil logger
// disables event logging.
func NewSnapshotStore(path string, logger log.Logger) *SnapshotStore {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &SnapshotStore{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save persists the accessory database to disk as a CBOR snapshot.
func (s *SnapshotStore) Save(accs *model.Accessories) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	doc := accs.Document()
	hash, err := HashDocument(doc)
	if err != nil {
		return err
	}
	snap := Snapshot{
		Version:  SnapshotVersion,
		SavedAt:  time.Now(),
		Hash:     hash,
		Document: doc,
	}
	data, err := wire.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return err
	}

	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceStore,
		Category:  log.CategorySnapshot,
		Snapshot: &log.SnapshotEvent{
			Kind:        log.SnapshotSave,
			Path:        s.path,
			Accessories: len(doc.Accessories),
			Bytes:       len(data),
			Hash:        hash,
		},
	})
	return nil
}

// Load reads the accessory database from disk, verifying the format
// version and the content hash.
// Returns nil, nil if the file doesn't exist (empty database).
func (s *SnapshotStore) Load() (*model.Accessories, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := wire.Unmarshal(data, &snap); err != nil {
		return nil, s.loadError(err)
	}
	if snap.Version != SnapshotVersion {
		return nil, s.loadError(fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version))
	}
	if snap.Document == nil {
		return nil, s.loadError(fmt.Errorf("%w: no document", ErrSnapshotCorrupt))
	}
	hash, err := HashDocument(snap.Document)
	if err != nil {
		return nil, s.loadError(err)
	}
	if hash != snap.Hash {
		return nil, s.loadError(fmt.Errorf("%w: hash %s does not match %s", ErrSnapshotCorrupt, hash, snap.Hash))
	}

	accs, err := model.FromDocument(snap.Document)
	if err != nil {
		return nil, s.loadError(err)
	}

	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceStore,
		Category:  log.CategorySnapshot,
		Snapshot: &log.SnapshotEvent{
			Kind:        log.SnapshotLoad,
			Path:        s.path,
			Accessories: len(snap.Document.Accessories),
			Bytes:       len(data),
			Hash:        hash,
		},
	})
	return accs, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *SnapshotStore) loadError(err error) error {
	s.logger.Log(log.Event{
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
