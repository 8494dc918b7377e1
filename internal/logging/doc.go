// Package logging assembles structured slog loggers and formatting helpers used
// across goprotransfer.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so resolver and organizer code
// tag log lines with the run identifier and stage automatically. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
