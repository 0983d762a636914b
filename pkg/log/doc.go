// Package log provides a structured event log for observable collections.
//
// This package defines the Logger interface and Event types for capturing
// what a collection does with its subscription set: attaching and detaching
// relay handlers, relaying descendant changes, and membership changes.
// It is separate from operational logging (slog). The event log is a complete
// machine-readable trace for debugging subscription problems.
//
// # Basic Usage
//
// Collections accept a Logger through an option:
//
//	// For development: log to console via slog
//	c := collection.New[*catalog.Order](collection.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For later analysis: write to binary file
//	fl, _ := log.NewFileLogger("/tmp/orders.glog")
//	c := collection.New[*catalog.Order](collection.WithLogger(fl))
//
//	// Both: use MultiLogger
//	c := collection.New[*catalog.Order](collection.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	)))
//
// # Event Types
//
// Events are grouped by category:
//   - Subscription: a relay handler was attached to or detached from an entity
//   - Relay: a descendant change was re-emitted at the collection
//   - Collection: members were added, removed, replaced, moved, or cleared
//   - Error: a malformed field was skipped during a walk
//
// # File Format
//
// Log files use CBOR encoding with .glog extension. The graphwatch-log CLI
// provides viewing, filtering, and statistics.
package log
