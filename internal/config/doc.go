// Package config loads, normalizes, and validates goprotransfer configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the GOPROTRANSFER_EXIFTOOL
// environment override for the extractor binary. The Config type centralizes
// every knob the CLI and the organizer need so they are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, lowercased extensions, and clear validation errors.
package config
