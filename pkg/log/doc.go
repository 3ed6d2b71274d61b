// Package log provides structured event logging for the VeSync bridge.
//
// This package defines the Logger interface and Event types for capturing
// bridge-level events (device discovery, vendor commands, entity state
// refreshes, errors). It is separate from operational logging (slog) -
// event capture provides a machine-readable trace for debugging a device
// integration without scraping console output.
//
// # Basic Usage
//
// Components take a Logger and applications choose an implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/vesync/bridge.vlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Each event carries one type-specific payload:
//   - Discovery: a device was announced and claimed or skipped
//   - Command: a command was issued to the vendor device
//   - StateRefresh: an entity state snapshot was recomputed
//   - Error: a failure at any point in the bridge
//
// # File Format
//
// Log files use CBOR encoding with integer keys and the .vlog extension.
// Reader decodes them back into events, optionally filtered.
package log
