package model

import (
	"fmt"
	"sync"

	"github.com/hap-protocol/hap-go/pkg/wire"
)

// Accessories is the root of an accessory database.
type Accessories struct {
	mu sync.RWMutex

	accessories []*Accessory
}

// NewAccessories returns an empty accessory database.
func NewAccessories() *Accessories {
	return &Accessories{}
}

// Add appends an accessory to the database.
func (a *Accessories) Add(acc *Accessory) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accessories = append(a.accessories, acc)
}

// Accessories returns the accessories in the order they were added.
func (a *Accessories) Accessories() []*Accessory {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Accessory(nil), a.accessories...)
}

// Len returns the number of accessories.
func (a *Accessories) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.accessories)
}

// AID returns the accessory with the given id. Missing ids report
// ErrNotFound.
func (a *Accessories) AID(aid uint64) (*Accessory, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, acc := range a.accessories {
		if acc.aid == aid {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: accessory %d", ErrNotFound, aid)
}

// Document converts the database and everything below it to its wire
// form.
func (a *Accessories) Document() *wire.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	doc := &wire.Document{Accessories: make([]wire.AccessoryRecord, 0, len(a.accessories))}
	for _, acc := range a.accessories {
		doc.Accessories = append(doc.Accessories, acc.Record())
	}
	return doc
}

// FromDocument builds an accessory database from its wire form. The
// process-wide accessory id generator is advanced past the largest
// loaded id so new accessories never collide with loaded ones.
func FromDocument(doc *wire.Document) (*Accessories, error) {
	accs := NewAccessories()
	var maxAID uint64
	for _, rec := range doc.Accessories {
		acc, err := accessoryFromRecord(rec)
		if err != nil {
			return nil, err
		}
		accs.Add(acc)
		if rec.AID > maxAID {
			maxAID = rec.AID
		}
	}
	advanceAccessoryIDs(maxAID)
	return accs, nil
}

// MarshalJSON encodes the database in its wire form.
func (a *Accessories) MarshalJSON() ([]byte, error) {
	return wire.EncodeDocument(a.Document())
}

// UnmarshalJSON decodes the wire form and replaces the database
// contents.
func (a *Accessories) UnmarshalJSON(data []byte) error {
	doc, err := wire.DecodeDocument(data)
	if err != nil {
		return err
	}
	loaded, err := FromDocument(doc)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.accessories = loaded.accessories
	a.mu.Unlock()
	return nil
}
