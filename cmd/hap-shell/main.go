// Command hap-shell is an interactive shell over a HAP accessory
// database file.
//
// The shell loads a JSON accessory database, renders it as an indented
// tree, and supports querying and editing it from a readline prompt.
//
// Usage:
//
//	hap-shell [flags]
//
// Flags:
//
//	-file string       Database file to open at startup
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-event-log string  Append database events to this CBOR log file
//
// Commands:
//
//	load <path>        Load a database file
//	save [path]        Save the database
//	list               Show the full accessory tree
//	show <aid>         Show one accessory
//	services <aid>     List the services of an accessory
//	linked <aid> <iid> Show linked services
//	find <type>        Find services by type
//	value <aid> <iid> [new-value]  Read or write a characteristic
//	hash               Show the database content hash
//	new <name> <manufacturer> <model> <serial> <firmware>  Add an accessory
//	help, exit
//
// Examples:
//
//	# Open a database and browse it
//	hap-shell -file accessories.json
//
//	# Start with an empty database, log store activity
//	hap-shell -log-level debug
//
//	# Keep a replayable event log alongside the session
//	hap-shell -file accessories.json -event-log events.cborlog
package main

import (
	"context"
	"flag"
	stdlog "log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hap-protocol/hap-go/cmd/hap-shell/interactive"
	"github.com/hap-protocol/hap-go/pkg/log"
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/store"
)

// Config holds the shell configuration.
type Config struct {
	File     string
	LogLevel string
	EventLog string
}

var config Config

func init() {
	flag.StringVar(&config.File, "file", "", "Database file to open at startup")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.EventLog, "event-log", "", "Append database events to this CBOR log file")
}

func main() {
	flag.Parse()

	logger := setupLogging(config.LogLevel)
	if config.EventLog != "" {
		fileLogger, err := log.NewFileLogger(config.EventLog)
		if err != nil {
			stdlog.Fatalf("Failed to open event log %s: %v", config.EventLog, err)
		}
		defer fileLogger.Close()
		logger = log.NewMultiLogger(logger, fileLogger)
	}

	db := model.NewAccessories()
	var file *store.Database
	if config.File != "" {
		file = store.NewDatabase(config.File, logger)
		loaded, err := file.Load()
		if err != nil {
			stdlog.Fatalf("Failed to load %s: %v", config.File, err)
		}
		if loaded != nil {
			db = loaded
			stdlog.Printf("Loaded %d accessories from %s", db.Len(), config.File)
		} else {
			stdlog.Printf("No database at %s, starting empty", config.File)
		}
	}

	shell, err := interactive.New(db, file, logger)
	if err != nil {
		stdlog.Fatalf("Failed to create shell: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shut the loop down on SIGINT/SIGTERM as well as on exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	shell.Run(ctx, cancel)
}

// setupLogging builds the event logger for the given level. Store and
// mutation events surface at debug, errors always.
func setupLogging(level string) log.Logger {
	stdlog.SetFlags(stdlog.Ltime)

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	return log.NewSlogAdapter(slog.New(handler))
}
