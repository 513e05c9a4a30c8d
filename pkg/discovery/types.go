package discovery

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeHAP is the DNS-SD service type for HAP accessories over IP.
	ServiceTypeHAP = "_hap._tcp"

	// Domain is the mDNS domain.
	Domain = "local"
)

// TXT record key constants.
const (
	TXTKeyDeviceID        = "id" // Device id (MAC-style pairing identifier)
	TXTKeyConfigNumber    = "c#" // Configuration number, bumped on database change
	TXTKeyStateNumber     = "s#" // Current state number
	TXTKeyModel           = "md" // Model name
	TXTKeyProtocolVersion = "pv" // Protocol version (absent means "1.0")
	TXTKeyCategory        = "ci" // Accessory category identifier
	TXTKeyStatusFlags     = "sf" // Status flags bitmask
	TXTKeyFeatureFlags    = "ff" // Feature flags bitmask
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63

	// DeviceIDLength is the length of a device id (six hex pairs, colon-separated).
	DeviceIDLength = 17
)

// DefaultProtocolVersion is assumed when an accessory omits the pv key.
const DefaultProtocolVersion = "1.0"

// Discovery errors.
var (
	ErrMissingRequired     = errors.New("missing required field")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record format")
	ErrInvalidDeviceID     = errors.New("invalid device id format")
	ErrInvalidSetupCode    = errors.New("invalid setup code format")
	ErrInstanceNameTooLong = errors.New("instance name exceeds 63 characters")
	ErrNotFound            = errors.New("accessory not found")
)

// Category is the accessory category advertised in the "ci" TXT key.
// Categories describe the accessory's primary function and drive the icon
// controllers show during pairing.
type Category uint8

const (
	CategoryOther              Category = 1
	CategoryBridge             Category = 2
	CategoryFan                Category = 3
	CategoryGarage             Category = 4
	CategoryLightbulb          Category = 5
	CategoryDoorLock           Category = 6
	CategoryOutlet             Category = 7
	CategorySwitch             Category = 8
	CategoryThermostat         Category = 9
	CategorySensor             Category = 10
	CategorySecuritySystem     Category = 11
	CategoryDoor               Category = 12
	CategoryWindow             Category = 13
	CategoryWindowCovering     Category = 14
	CategoryProgrammableSwitch Category = 15
	CategoryRangeExtender      Category = 16
	CategoryIPCamera           Category = 17
	CategoryVideoDoorbell      Category = 18
	CategoryAirPurifier        Category = 19
	CategoryHeater             Category = 20
	CategoryAirConditioner     Category = 21
	CategoryHumidifier         Category = 22
	CategoryDehumidifier       Category = 23
	CategorySprinkler          Category = 28
	CategoryFaucet             Category = 29
	CategoryShowerSystem       Category = 30
)

// String returns the category display name.
func (c Category) String() string {
	switch c {
	case CategoryOther:
		return "Other"
	case CategoryBridge:
		return "Bridge"
	case CategoryFan:
		return "Fan"
	case CategoryGarage:
		return "Garage"
	case CategoryLightbulb:
		return "Lightbulb"
	case CategoryDoorLock:
		return "Door Lock"
	case CategoryOutlet:
		return "Outlet"
	case CategorySwitch:
		return "Switch"
	case CategoryThermostat:
		return "Thermostat"
	case CategorySensor:
		return "Sensor"
	case CategorySecuritySystem:
		return "Security System"
	case CategoryDoor:
		return "Door"
	case CategoryWindow:
		return "Window"
	case CategoryWindowCovering:
		return "Window Covering"
	case CategoryProgrammableSwitch:
		return "Programmable Switch"
	case CategoryRangeExtender:
		return "Range Extender"
	case CategoryIPCamera:
		return "IP Camera"
	case CategoryVideoDoorbell:
		return "Video Door Bell"
	case CategoryAirPurifier:
		return "Air Purifier"
	case CategoryHeater:
		return "Heater"
	case CategoryAirConditioner:
		return "Air Conditioner"
	case CategoryHumidifier:
		return "Humidifier"
	case CategoryDehumidifier:
		return "Dehumidifier"
	case CategorySprinkler:
		return "Sprinkler"
	case CategoryFaucet:
		return "Faucet"
	case CategoryShowerSystem:
		return "Shower System"
	default:
		return "Unknown"
	}
}

// StatusFlags is the "sf" TXT bitmask describing pairing and provisioning state.
type StatusFlags uint8

const (
	// StatusUnpaired is set while the accessory has never been paired.
	StatusUnpaired StatusFlags = 0x01

	// StatusWiFiNotConfigured is set while the accessory has not been
	// configured to join a Wi-Fi network.
	StatusWiFiNotConfigured StatusFlags = 0x02

	// StatusProblemDetected is set when the accessory has detected a problem.
	StatusProblemDetected StatusFlags = 0x04
)

// Paired reports whether the accessory has been paired with a controller.
func (f StatusFlags) Paired() bool {
	return f&StatusUnpaired == 0
}

// String returns the status description shown by controller tooling.
func (f StatusFlags) String() string {
	if f == 0 {
		return "Accessory has been paired."
	}

	var parts []string
	if f&StatusUnpaired != 0 {
		parts = append(parts, "Accessory has not been paired with any controllers.")
	}
	if f&StatusWiFiNotConfigured != 0 {
		parts = append(parts, "Accessory has not been configured to join a Wi-Fi network.")
	}
	if f&StatusProblemDetected != 0 {
		parts = append(parts, "Problem has been detected on accessory.")
	}
	if len(parts) == 0 {
		return "Unknown status."
	}
	return strings.Join(parts, " ")
}

// FeatureFlags is the "ff" TXT bitmask describing pairing authentication support.
type FeatureFlags uint8

const (
	// FeatureHardwareAuth indicates an Apple authentication coprocessor.
	FeatureHardwareAuth FeatureFlags = 0x01

	// FeatureSoftwareAuth indicates software token authentication.
	FeatureSoftwareAuth FeatureFlags = 0x02
)

// String returns the feature description shown by controller tooling.
func (f FeatureFlags) String() string {
	switch {
	case f&FeatureHardwareAuth != 0 && f&FeatureSoftwareAuth != 0:
		return "Supports HAP Pairing with hardware and software authentication"
	case f&FeatureHardwareAuth != 0:
		return "Supports HAP Pairing with Apple authentication coprocessor"
	case f&FeatureSoftwareAuth != 0:
		return "Supports HAP Pairing with Software authentication"
	default:
		return "No support for HAP Pairing"
	}
}

// AccessoryInfo contains the advertised properties of a HAP accessory.
//
// It is both the input for advertising and the decoded form of a TXT record
// set. Name, Port and Host only matter when advertising; DecodeAccessoryTXT
// leaves them zero because they live in the SRV record, not the TXT records.
type AccessoryInfo struct {
	// DeviceID is the pairing identifier (TXT "id", MAC-style).
	DeviceID string

	// ConfigNumber is the configuration number (TXT "c#"). Accessories
	// must bump it whenever their database changes; controllers compare it
	// against their cached copy to detect staleness.
	ConfigNumber uint32

	// StateNumber is the current state number (TXT "s#").
	StateNumber uint32

	// Model is the model name (TXT "md").
	Model string

	// ProtocolVersion is the protocol version (TXT "pv", default "1.0").
	ProtocolVersion string

	// Category is the accessory category (TXT "ci").
	Category Category

	// StatusFlags is the status bitmask (TXT "sf").
	StatusFlags StatusFlags

	// FeatureFlags is the feature bitmask (TXT "ff").
	FeatureFlags FeatureFlags

	// Name is the instance name to advertise.
	Name string

	// Port is the service port to advertise.
	Port uint16

	// Host is the hostname to advertise. Empty means the system hostname.
	Host string
}

// Validate checks the fields required for advertising.
func (a *AccessoryInfo) Validate() error {
	if !ValidateDeviceID(a.DeviceID) {
		return fmt.Errorf("%w: %q", ErrInvalidDeviceID, a.DeviceID)
	}
	if a.ConfigNumber == 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyConfigNumber)
	}
	if a.Model == "" {
		return fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyModel)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: instance name", ErrMissingRequired)
	}
	if a.Port == 0 {
		return fmt.Errorf("%w: port", ErrMissingRequired)
	}
	return nil
}

// AnnouncedAccessory represents a HAP accessory found via mDNS.
type AnnouncedAccessory struct {
	// InstanceName is the mDNS instance name (e.g. "Koogeek-LS1-20833F").
	InstanceName string

	// Host is the hostname (e.g. "Koogeek-LS1.local.").
	Host string

	// Port is the service port.
	Port uint16

	// Addresses contains resolved IP addresses.
	Addresses []string

	// DeviceID is the pairing identifier (from TXT "id").
	DeviceID string

	// ConfigNumber is the configuration number (from TXT "c#").
	ConfigNumber uint32

	// StateNumber is the current state number (from TXT "s#").
	StateNumber uint32

	// Model is the model name (from TXT "md").
	Model string

	// ProtocolVersion is the protocol version (from TXT "pv").
	ProtocolVersion string

	// Category is the accessory category (from TXT "ci").
	Category Category

	// StatusFlags is the status bitmask (from TXT "sf").
	StatusFlags StatusFlags

	// FeatureFlags is the feature bitmask (from TXT "ff").
	FeatureFlags FeatureFlags
}
