package model

import "sync/atomic"

// FirstAccessoryID is the first id the process-wide accessory id
// generator hands out. Accessory id 1 is reserved for the bridge
// itself, so generated ids begin above it.
const FirstAccessoryID uint64 = 2

// AccessoryIDGenerator hands out strictly increasing accessory ids.
// It is safe for concurrent use.
type AccessoryIDGenerator struct {
	next atomic.Uint64
}

// NewAccessoryIDGenerator creates a generator whose first id is first.
func NewAccessoryIDGenerator(first uint64) *AccessoryIDGenerator {
	g := &AccessoryIDGenerator{}
	g.next.Store(first)
	return g
}

// Next returns the next accessory id. Ids are never handed out twice.
func (g *AccessoryIDGenerator) Next() uint64 {
	return g.next.Add(1) - 1
}

// AdvancePast raises the generator floor so the next id is strictly
// greater than past. Floors below the current position are ignored.
func (g *AccessoryIDGenerator) AdvancePast(past uint64) {
	for {
		cur := g.next.Load()
		if cur > past {
			return
		}
		if g.next.CompareAndSwap(cur, past+1) {
			return
		}
	}
}

var defaultIDGen atomic.Pointer[AccessoryIDGenerator]

func init() {
	defaultIDGen.Store(NewAccessoryIDGenerator(FirstAccessoryID))
}

// NextAccessoryID returns the next id from the process-wide generator.
func NextAccessoryID() uint64 {
	return defaultIDGen.Load().Next()
}

// SetAccessoryIDGenerator replaces the process-wide generator and
// returns the previous one. Tests use it to obtain deterministic ids;
// restoring the returned generator undoes the swap.
func SetAccessoryIDGenerator(g *AccessoryIDGenerator) *AccessoryIDGenerator {
	return defaultIDGen.Swap(g)
}

// advanceAccessoryIDs raises the process-wide generator floor past the
// given id. Reconstructing a database from records calls this so
// freshly generated ids never collide with loaded ones.
func advanceAccessoryIDs(past uint64) {
	defaultIDGen.Load().AdvancePast(past)
}
