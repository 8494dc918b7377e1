// Package organizer sorts GoPro footage from an input folder into per-camera
// output folders.
//
// Process lists the input folder, resolves each video through exiftool, keeps
// the files recorded inside the requested time window and buckets them by
// camera serial and video type. Chaptered recordings are further grouped into
// one folder per session, named after the first chapter's timestamp. Files are
// then moved or copied. Failures that concern a single file are logged and
// recorded in the Result; only a failure to list the input folder aborts the
// run.
package organizer
