// Package wire defines the serialized forms of an accessory database.
//
// The primary format is the JSON accessory document exchanged with
// HomeKit controllers:
//
//	{"accessories": [{"aid": 1, "services": [...]}, ...]}
//
// # Presence
//
// Optional characteristic keys (value, description, minValue, ...)
// round-trip by presence: a key absent on decode stays absent on
// encode. Pointer fields combined with omitempty carry that
// distinction; an explicit JSON null is treated as absent.
//
// # Value Normalization
//
// JSON numbers are decoded through json.Number and mapped to the Go
// type implied by the characteristic's format. Values that do not fit
// their declared format are kept verbatim so foreign documents
// survive a round trip unchanged.
//
// # Snapshots
//
// The CBOR helpers (RFC 8949, canonical encoding) serve the binary
// snapshot store, not the controller-facing document format.
package wire
