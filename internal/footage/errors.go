package footage

import "errors"

// ErrNoCreateDate reports metadata without a TrackCreateDate.
var ErrNoCreateDate = errors.New("track create date missing")
