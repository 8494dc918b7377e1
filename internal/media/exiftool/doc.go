// Package exiftool provides a typed wrapper around exiftool JSON output.
//
// Key types:
//   - Record: the tags of one inspected file that the organizer relies on
//
// Primary entry point:
//   - Inspect: executes `exiftool -j` and returns the first Record
//
// Tags that exiftool omits or reports as null decode as absent values.
package exiftool
