// Package services defines shared utilities consumed by the resolver, the
// organizer, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper that let callers tell a
//     skippable per-file failure apart from a run-level one.
//
// Use these helpers when wiring new logic so error handling and log
// correlation stay uniform across a run.
package services
