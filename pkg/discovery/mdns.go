package discovery

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/hap-protocol/hap-go/pkg/log"
)

// MDNSAdvertiser implements the Advertiser interface using zeroconf.
type MDNSAdvertiser struct {
	config AdvertiserConfig

	mu sync.Mutex

	// Active announcements keyed by normalized device id.
	servers map[string]*advertisedAccessory
}

type advertisedAccessory struct {
	info   *AccessoryInfo
	server *zeroconf.Server
}

// NewMDNSAdvertiser creates a new mDNS advertiser.
func NewMDNSAdvertiser(config AdvertiserConfig) (*MDNSAdvertiser, error) {
	return &MDNSAdvertiser{
		config:  config,
		servers: make(map[string]*advertisedAccessory),
	}, nil
}

// getInterfaces returns the network interfaces to use for advertising.
// Returns nil to use all interfaces.
func (a *MDNSAdvertiser) getInterfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}

	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// Advertise starts announcing an accessory.
func (a *MDNSAdvertiser) Advertise(ctx context.Context, info *AccessoryInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	key := NormalizeDeviceID(info.DeviceID)

	// Replace an existing announcement for this device if any
	if existing, ok := a.servers[key]; ok {
		existing.server.Shutdown()
		delete(a.servers, key)
	}

	instanceName := info.Name
	if len(instanceName) > MaxInstanceNameLen {
		instanceName = instanceName[:MaxInstanceNameLen]
	}

	txtStrings := TXTRecordsToStrings(EncodeAccessoryTXT(info))

	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}

	server, err := zeroconf.Register(
		instanceName,
		ServiceTypeHAP,
		Domain,
		int(info.Port),
		txtStrings,
		a.getInterfaces(),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register accessory: %w", err)
	}

	copied := *info
	a.servers[key] = &advertisedAccessory{info: &copied, server: server}
	return nil
}

// Update republishes the TXT records for an advertised accessory.
func (a *MDNSAdvertiser) Update(deviceID string, info *AccessoryInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.updateLocked(NormalizeDeviceID(deviceID), info)
}

func (a *MDNSAdvertiser) updateLocked(key string, info *AccessoryInfo) error {
	adv, ok := a.servers[key]
	if !ok {
		return ErrNotFound
	}

	txtStrings := TXTRecordsToStrings(EncodeAccessoryTXT(info))
	adv.server.SetText(txtStrings)

	copied := *info
	adv.info = &copied
	return nil
}

// BumpConfigNumber increments c# and republishes.
// The counter wraps to 1, never 0.
func (a *MDNSAdvertiser) BumpConfigNumber(deviceID string) (uint32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := NormalizeDeviceID(deviceID)
	adv, ok := a.servers[key]
	if !ok {
		return 0, ErrNotFound
	}

	next := *adv.info
	if next.ConfigNumber == ^uint32(0) {
		next.ConfigNumber = 1
	} else {
		next.ConfigNumber++
	}
	if err := a.updateLocked(key, &next); err != nil {
		return 0, err
	}
	return next.ConfigNumber, nil
}

// SetPaired sets or clears the unpaired status flag and republishes.
func (a *MDNSAdvertiser) SetPaired(deviceID string, paired bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := NormalizeDeviceID(deviceID)
	adv, ok := a.servers[key]
	if !ok {
		return ErrNotFound
	}

	next := *adv.info
	if paired {
		next.StatusFlags &^= StatusUnpaired
	} else {
		next.StatusFlags |= StatusUnpaired
	}
	return a.updateLocked(key, &next)
}

// Advertised returns a copy of the currently advertised info for a device id.
func (a *MDNSAdvertiser) Advertised(deviceID string) (*AccessoryInfo, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	adv, ok := a.servers[NormalizeDeviceID(deviceID)]
	if !ok {
		return nil, false
	}
	copied := *adv.info
	return &copied, true
}

// Stop stops announcing a specific accessory.
func (a *MDNSAdvertiser) Stop(deviceID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := NormalizeDeviceID(deviceID)
	adv, ok := a.servers[key]
	if !ok {
		return ErrNotFound
	}

	adv.server.Shutdown()
	delete(a.servers, key)
	return nil
}

// StopAll stops all announcements.
func (a *MDNSAdvertiser) StopAll() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for key, adv := range a.servers {
		adv.server.Shutdown()
		delete(a.servers, key)
	}
}

// MDNSBrowser implements the Browser interface using zeroconf.
type MDNSBrowser struct {
	config BrowserConfig
	logger log.Logger

	mu      sync.Mutex
	cancels []context.CancelFunc
}

// NewMDNSBrowser creates a new mDNS browser.
func NewMDNSBrowser(config BrowserConfig) (*MDNSBrowser, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	if config.BrowseTimeout <= 0 {
		config.BrowseTimeout = BrowseTimeout
	}
	return &MDNSBrowser{
		config: config,
		logger: logger,
	}, nil
}

// Browse searches for accessories announcing _hap._tcp.
//
// Results are aggregated by instance name: addresses seen on multiple
// interfaces are merged into the already-emitted entry, and an accessory is
// reported as lost only once all of its addresses have disappeared.
// Responders whose TXT records lack the required HAP keys are skipped.
func (b *MDNSBrowser) Browse(ctx context.Context) (<-chan *AnnouncedAccessory, error) {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	out := make(chan *AnnouncedAccessory)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := b.browserOptions()

	// Process entries with aggregation
	go func() {
		defer close(out)

		// Track accessories by instance name, aggregating addresses
		accessories := make(map[string]*AnnouncedAccessory)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				acc := b.entryToAccessory(entry)
				if acc == nil {
					continue
				}

				existing, found := accessories[acc.InstanceName]
				if found {
					// Merge addresses into the already-emitted entry
					existing.Addresses = mergeAddresses(existing.Addresses, acc.Addresses)
					continue
				}

				accessories[acc.InstanceName] = acc
				b.logBrowse(log.BrowseFound, acc)
				select {
				case out <- acc:
				case <-ctx.Done():
					return
				}

			case entry, ok := <-removed:
				if !ok {
					removed = nil
					continue
				}
				// Remove the addresses that came from this interface
				existing, found := accessories[entry.Instance]
				if !found {
					continue
				}
				existing.Addresses = removeAddresses(existing.Addresses, entry)
				if len(existing.Addresses) == 0 {
					delete(accessories, entry.Instance)
					b.logBrowse(log.BrowseLost, existing)
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Start browsing in background
	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeHAP, Domain, entries, removed, opts...)
	}()

	return out, nil
}

// FindByDeviceID searches for the accessory with the given device id.
// Device ids compare case-insensitively. When the context carries no
// deadline, the configured BrowseTimeout applies.
func (b *MDNSBrowser) FindByDeviceID(ctx context.Context, deviceID string) (*AnnouncedAccessory, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.config.BrowseTimeout)
		defer cancel()
	}

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	for {
		select {
		case acc, ok := <-results:
			if !ok {
				return nil, ErrNotFound
			}
			if strings.EqualFold(acc.DeviceID, deviceID) {
				return acc, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Stop stops all active browsing operations.
func (b *MDNSBrowser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

// browserOptions returns zeroconf client options based on config.
func (b *MDNSBrowser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	// Select specific interface if configured
	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}

	return opts
}

// entryToAccessory converts a zeroconf entry, returning nil for responders
// that are not HAP accessories.
func (b *MDNSBrowser) entryToAccessory(entry *zeroconf.ServiceEntry) *AnnouncedAccessory {
	txt := StringsToTXTRecords(entry.Text)
	if !IsHAPAccessory(txt) {
		return nil
	}
	info, err := DecodeAccessoryTXT(txt)
	if err != nil {
		return nil
	}

	// Collect addresses
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return &AnnouncedAccessory{
		InstanceName:    entry.Instance,
		Host:            entry.HostName,
		Port:            uint16(entry.Port),
		Addresses:       addrs,
		DeviceID:        info.DeviceID,
		ConfigNumber:    info.ConfigNumber,
		StateNumber:     info.StateNumber,
		Model:           info.Model,
		ProtocolVersion: info.ProtocolVersion,
		Category:        info.Category,
		StatusFlags:     info.StatusFlags,
		FeatureFlags:    info.FeatureFlags,
	}
}

func (b *MDNSBrowser) logBrowse(kind log.BrowseKind, acc *AnnouncedAccessory) {
	b.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceDiscovery,
		Category:  log.CategoryBrowse,
		Browse: &log.BrowseEvent{
			Kind:     kind,
			Instance: acc.InstanceName,
			Host:     acc.Host,
			Port:     int(acc.Port),
			DeviceID: acc.DeviceID,
		},
	})
}

// mergeAddresses adds new addresses to the existing list, avoiding duplicates.
func mergeAddresses(existing, found []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}

	for _, addr := range found {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses removes the addresses of a zeroconf entry from the list.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	toRemove := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		toRemove[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		toRemove[ip.String()] = true
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}

// Ensure MDNSAdvertiser implements Advertiser interface.
var _ Advertiser = (*MDNSAdvertiser)(nil)

// Ensure MDNSBrowser implements Browser interface.
var _ Browser = (*MDNSBrowser)(nil)
