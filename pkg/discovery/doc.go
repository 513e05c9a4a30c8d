// Package discovery implements mDNS/DNS-SD discovery for HAP accessories.
//
// HAP accessories announce a single service type over IP:
//
// # Accessory Discovery (_hap._tcp)
//
// Every accessory (or bridge) announces one instance named after its display
// name. TXT records carry the pairing identity and database freshness:
// id (device id), c# (configuration number, bumped whenever the accessory
// database changes), md (model name), and optionally s# (state number),
// ci (category), sf (status flags), ff (feature flags) and pv (protocol
// version, "1.0" when absent). A responder missing id, c# or md is not a
// HAP accessory and is skipped during browsing. Key lookup is
// case-insensitive because accessories in the wild disagree on casing.
//
// # Status Flags
//
// Bit 0x01 of sf is set while the accessory has never been paired.
// Controllers filter on it to list accessories available for pairing, and
// accessories clear it (and bump c#) once a pairing completes.
//
// # Device IDs
//
// Device ids are MAC-style identifiers (six colon-separated hex pairs,
// e.g. "A4:12:F0:3C:55:01") generated once at first boot. They key
// advertisements and are matched case-insensitively when browsing.
//
// # Setup Codes
//
// Pairing authenticates with an 8-digit setup code displayed as XXX-XX-XXX.
// Trivially guessable codes (repeated digits, ascending and descending runs)
// are disallowed and never produced by GenerateSetupCode.
package discovery
