// Command hap-discover scans the local network for HAP accessories.
//
// It browses the _hap._tcp mDNS service and prints each announced
// accessory with its address, pairing identifier, model, category and
// pairing state. With -id it resolves a single accessory by device id
// instead.
//
// Usage:
//
//	hap-discover [flags]
//
// Flags:
//
//	-timeout duration   How long to browse (default 10s)
//	-interface string   Network interface to browse on (default all)
//	-id string          Find one accessory by device id, print address:port
//	-unpaired           Only show accessories available for pairing
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Scan for 10 seconds
//	hap-discover
//
//	# Resolve one accessory
//	hap-discover -id AA:BB:CC:DD:EE:FF
//
//	# Longer scan on one interface, unpaired accessories only
//	hap-discover -timeout 30s -interface en0 -unpaired
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hap-protocol/hap-go/pkg/discovery"
)

// Config holds the scanner configuration.
type Config struct {
	Timeout   time.Duration
	Interface string
	DeviceID  string
	Unpaired  bool
	LogLevel  string
}

var config Config

func init() {
	flag.DurationVar(&config.Timeout, "timeout", 10*time.Second, "How long to browse")
	flag.StringVar(&config.Interface, "interface", "", "Network interface to browse on (default all)")
	flag.StringVar(&config.DeviceID, "id", "", "Find one accessory by device id, print address:port")
	flag.BoolVar(&config.Unpaired, "unpaired", false, "Only show accessories available for pairing")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	setupLogging(config.LogLevel)

	browserConfig := discovery.DefaultBrowserConfig()
	browserConfig.BrowseTimeout = config.Timeout
	browserConfig.Interface = config.Interface

	browser, err := discovery.NewMDNSBrowser(browserConfig)
	if err != nil {
		log.Fatalf("Failed to create browser: %v", err)
	}
	defer browser.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	// Ctrl-C ends the scan early.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if config.DeviceID != "" {
		findOne(ctx, browser, config.DeviceID)
		return
	}
	scan(ctx, browser)
}

// findOne resolves a single accessory by device id and prints its
// address and port.
func findOne(ctx context.Context, browser *discovery.MDNSBrowser, deviceID string) {
	acc, err := browser.FindByDeviceID(ctx, deviceID)
	if err != nil {
		log.Fatalf("Accessory %s not found: %v", deviceID, err)
	}
	fmt.Printf("%s:%d\n", primaryAddress(acc), acc.Port)
}

// scan browses until the context expires and prints every announced
// accessory.
func scan(ctx context.Context, browser *discovery.MDNSBrowser) {
	results, err := browser.Browse(ctx)
	if err != nil {
		log.Fatalf("Failed to browse: %v", err)
	}
	if config.Unpaired {
		results = discovery.FilterBrowseResults(results, discovery.FilterUnpaired())
	}

	log.Printf("Browsing %s for %s...", discovery.ServiceTypeHAP, config.Timeout)

	count := 0
	for acc := range results {
		count++
		printAccessory(acc)
	}
	log.Printf("Found %d accessories", count)
}

func printAccessory(acc *discovery.AnnouncedAccessory) {
	paired := "unpaired"
	if acc.StatusFlags.Paired() {
		paired = "paired"
	}

	fmt.Printf("%s\n", acc.InstanceName)
	fmt.Printf("  Address:  %s:%d\n", primaryAddress(acc), acc.Port)
	fmt.Printf("  ID:       %s\n", acc.DeviceID)
	fmt.Printf("  Model:    %s\n", acc.Model)
	fmt.Printf("  Category: %s\n", acc.Category)
	fmt.Printf("  State:    %s (c# %d)\n", paired, acc.ConfigNumber)
	fmt.Println()
}

// primaryAddress picks the first resolved address, falling back to the
// announced hostname.
func primaryAddress(acc *discovery.AnnouncedAccessory) string {
	if len(acc.Addresses) > 0 {
		return acc.Addresses[0]
	}
	return strings.TrimSuffix(acc.Host, ".")
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}
