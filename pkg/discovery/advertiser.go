package discovery

import (
	"context"
	"time"
)

// Advertiser provides mDNS advertising for HAP accessories.
//
// A single advertiser can announce several accessories at once, keyed by
// device id; a bridge process typically announces exactly one.
type Advertiser interface {
	// Advertise starts announcing an accessory. An existing announcement
	// for the same device id is replaced.
	Advertise(ctx context.Context, info *AccessoryInfo) error

	// Update republishes the TXT records for an advertised accessory.
	Update(deviceID string, info *AccessoryInfo) error

	// BumpConfigNumber increments c# and republishes, returning the new
	// value. Call it after any change to the accessory database;
	// controllers use c# to detect that their cached copy is stale.
	BumpConfigNumber(deviceID string) (uint32, error)

	// SetPaired sets or clears the unpaired status flag and republishes.
	SetPaired(deviceID string, paired bool) error

	// Stop stops announcing a specific accessory.
	Stop(deviceID string) error

	// StopAll stops all announcements.
	StopAll()
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       120 * time.Second,
	}
}
