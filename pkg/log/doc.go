// Package log provides structured event logging for accessory
// databases.
//
// This package defines the Logger interface and Event types for
// capturing database-level events from multiple sources (database,
// store, discovery). It is separate from operational logging (slog) -
// event capture provides a complete machine-readable trace for
// debugging and analysis.
//
// # Basic Usage
//
// Components accept a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/hap/accessories.hlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events come from multiple sources:
//   - Database: accessory, service and value mutations (MutationEvent)
//   - Store: snapshot saves and loads (SnapshotEvent)
//   - Discovery: instances appearing and disappearing (BrowseEvent)
//
// Errors from any source have a dedicated event type.
//
// # File Format
//
// Log files use CBOR encoding with .hlog extension. The hap-shell CLI
// provides viewing and filtering.
package log
