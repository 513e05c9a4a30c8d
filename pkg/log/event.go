package log

import (
	"time"
)

// Event represents a database log event captured from any source.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Source that produced the event.
	Source Source `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// AID is the accessory id the event refers to, when known.
	AID uint64 `cbor:"4,keyasint,omitempty"`

	// IID is the instance id the event refers to, when known.
	IID uint64 `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Mutation *MutationEvent  `cbor:"6,keyasint,omitempty"` // Database changes
	Snapshot *SnapshotEvent  `cbor:"7,keyasint,omitempty"` // Store saves and loads
	Browse   *BrowseEvent    `cbor:"8,keyasint,omitempty"` // Discovery results
	Error    *ErrorEventData `cbor:"9,keyasint,omitempty"` // Errors from any source
}

// Source indicates which component produced the event.
type Source uint8

const (
	// SourceDatabase is the in-memory accessory database.
	SourceDatabase Source = 0
	// SourceStore is the persistence layer.
	SourceStore Source = 1
	// SourceDiscovery is the mDNS browser.
	SourceDiscovery Source = 2
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceDatabase:
		return "DATABASE"
	case SourceStore:
		return "STORE"
	case SourceDiscovery:
		return "DISCOVERY"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMutation indicates a database change.
	CategoryMutation Category = 0
	// CategorySnapshot indicates a store save or load.
	CategorySnapshot Category = 1
	// CategoryBrowse indicates a discovery result.
	CategoryBrowse Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMutation:
		return "MUTATION"
	case CategorySnapshot:
		return "SNAPSHOT"
	case CategoryBrowse:
		return "BROWSE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MutationEvent captures a change to the accessory database.
type MutationEvent struct {
	// Kind of change.
	Kind MutationKind `cbor:"1,keyasint"`

	// Type is the service or characteristic type UUID, when the change
	// concerns one.
	Type string `cbor:"2,keyasint,omitempty"`

	// Value carries the new value for value changes.
	Value any `cbor:"3,keyasint,omitempty"`
}

// MutationKind indicates the kind of database change.
type MutationKind uint8

const (
	// MutationAddAccessory indicates a new accessory.
	MutationAddAccessory MutationKind = 0
	// MutationAddService indicates a new service.
	MutationAddService MutationKind = 1
	// MutationAddCharacteristic indicates a new characteristic.
	MutationAddCharacteristic MutationKind = 2
	// MutationSetValue indicates a characteristic value change.
	MutationSetValue MutationKind = 3
	// MutationLinkService indicates a new service link.
	MutationLinkService MutationKind = 4
)

// String returns the mutation kind name.
func (m MutationKind) String() string {
	switch m {
	case MutationAddAccessory:
		return "ADD_ACCESSORY"
	case MutationAddService:
		return "ADD_SERVICE"
	case MutationAddCharacteristic:
		return "ADD_CHARACTERISTIC"
	case MutationSetValue:
		return "SET_VALUE"
	case MutationLinkService:
		return "LINK_SERVICE"
	default:
		return "UNKNOWN"
	}
}

// SnapshotEvent captures a store save or load.
type SnapshotEvent struct {
	// Kind of store operation.
	Kind SnapshotKind `cbor:"1,keyasint"`

	// Path is the file the store read or wrote.
	Path string `cbor:"2,keyasint"`

	// Accessories is the number of accessories in the snapshot.
	Accessories int `cbor:"3,keyasint"`

	// Bytes is the encoded snapshot size.
	Bytes int `cbor:"4,keyasint,omitempty"`

	// Hash is the snapshot content hash (hex), when computed.
	Hash string `cbor:"5,keyasint,omitempty"`
}

// SnapshotKind indicates the direction of a store operation.
type SnapshotKind uint8

const (
	// SnapshotSave indicates a write to disk.
	SnapshotSave SnapshotKind = 0
	// SnapshotLoad indicates a read from disk.
	SnapshotLoad SnapshotKind = 1
)

// String returns the snapshot kind name.
func (s SnapshotKind) String() string {
	switch s {
	case SnapshotSave:
		return "SAVE"
	case SnapshotLoad:
		return "LOAD"
	default:
		return "UNKNOWN"
	}
}

// BrowseEvent captures an mDNS discovery result.
type BrowseEvent struct {
	// Kind of discovery result.
	Kind BrowseKind `cbor:"1,keyasint"`

	// Instance is the service instance name.
	Instance string `cbor:"2,keyasint"`

	// Host is the advertised hostname.
	Host string `cbor:"3,keyasint,omitempty"`

	// Port is the advertised port.
	Port int `cbor:"4,keyasint,omitempty"`

	// DeviceID is the advertised device id (TXT key "id").
	DeviceID string `cbor:"5,keyasint,omitempty"`
}

// BrowseKind indicates the kind of discovery result.
type BrowseKind uint8

const (
	// BrowseFound indicates an instance appeared.
	BrowseFound BrowseKind = 0
	// BrowseLost indicates an instance disappeared.
	BrowseLost BrowseKind = 1
)

// String returns the browse kind name.
func (b BrowseKind) String() string {
	switch b {
	case BrowseFound:
		return "FOUND"
	case BrowseLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors from any source.
type ErrorEventData struct {
	// Source where the error occurred.
	Source Source `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
