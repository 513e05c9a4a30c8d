// Package store persists accessory databases to disk.
//
// Two formats are supported. Database writes the wire JSON document,
// human readable and diffable. SnapshotStore writes a CBOR snapshot
// carrying a format version and a BLAKE2b-256 content hash that is
// verified on load.
//
// Both stores report a missing file as an empty database (nil, nil)
// and log save and load events to a log.Logger.
package store
