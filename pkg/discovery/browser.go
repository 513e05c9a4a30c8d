package discovery

import (
	"context"
	"time"

	"github.com/hap-protocol/hap-go/pkg/log"
)

// Browser provides mDNS browsing for HAP accessories.
type Browser interface {
	// Browse searches for accessories announcing _hap._tcp.
	// The channel is closed when the context is cancelled or browsing
	// completes.
	Browse(ctx context.Context) (<-chan *AnnouncedAccessory, error)

	// FindByDeviceID searches for the accessory with the given device id.
	// Returns when found, with ErrNotFound when browsing completes without
	// a match, or with the context error on timeout.
	FindByDeviceID(ctx context.Context, deviceID string) (*AnnouncedAccessory, error)

	// Stop stops all active browsing operations.
	Stop()
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout is the default timeout for find operations.
	// Default: 10 seconds.
	BrowseTimeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// Logger receives a browse event per discovered or lost accessory.
	// Nil disables logging.
	Logger log.Logger
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
		Interface:     "",
	}
}

// FilterFunc is a function that filters browse results.
type FilterFunc func(*AnnouncedAccessory) bool

// FilterByCategory returns a filter that matches accessories in any of the
// given categories.
func FilterByCategory(categories ...Category) FilterFunc {
	catSet := make(map[Category]struct{})
	for _, c := range categories {
		catSet[c] = struct{}{}
	}

	return func(acc *AnnouncedAccessory) bool {
		_, ok := catSet[acc.Category]
		return ok
	}
}

// FilterUnpaired returns a filter that matches accessories available for
// pairing.
func FilterUnpaired() FilterFunc {
	return func(acc *AnnouncedAccessory) bool {
		return !acc.StatusFlags.Paired()
	}
}

// FilterBrowseResults filters a channel of announced accessories.
func FilterBrowseResults(in <-chan *AnnouncedAccessory, filter FilterFunc) <-chan *AnnouncedAccessory {
	out := make(chan *AnnouncedAccessory)
	go func() {
		defer close(out)
		for acc := range in {
			if filter(acc) {
				out <- acc
			}
		}
	}()
	return out
}

// ServiceEntry holds raw mDNS service entry data, decoupled from any
// particular mDNS library. This is a helper for Browser implementations.
type ServiceEntry struct {
	Instance string
	Service  string
	Domain   string
	Host     string
	Port     uint16
	Text     []string
	Addrs    []string
}

// ToAnnouncedAccessory converts a ServiceEntry to an AnnouncedAccessory.
func (e *ServiceEntry) ToAnnouncedAccessory() (*AnnouncedAccessory, error) {
	txt := StringsToTXTRecords(e.Text)
	info, err := DecodeAccessoryTXT(txt)
	if err != nil {
		return nil, err
	}

	return &AnnouncedAccessory{
		InstanceName:    e.Instance,
		Host:            e.Host,
		Port:            e.Port,
		Addresses:       e.Addrs,
		DeviceID:        info.DeviceID,
		ConfigNumber:    info.ConfigNumber,
		StateNumber:     info.StateNumber,
		Model:           info.Model,
		ProtocolVersion: info.ProtocolVersion,
		Category:        info.Category,
		StatusFlags:     info.StatusFlags,
		FeatureFlags:    info.FeatureFlags,
	}, nil
}
