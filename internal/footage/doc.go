// Package footage models action-camera recordings: the recording mode encoded
// in a camera filename, the metadata resolved for one file, and the keyed
// containers used to bucket files per camera and per recording session.
//
// Key types:
//   - VideoType: Chaptered, Looped, or Unknown, derived from the filename
//   - VideoMetadata: the resolved attributes of one video file
//   - Catalog: files bucketed by camera serial number and VideoType
//   - Session: the chapters of one Chaptered recording
//
// The package performs no I/O; the organizer feeds it resolved metadata and
// turns the resulting groups into folders.
package footage
