package footage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// CreateDateLayout is the exiftool date format, YYYY:MM:DD HH:MM:SS.
	CreateDateLayout = "2006:01:02 15:04:05"
	// SessionLabelLayout formats session folder names, YYYYMMDD_HHMMSS.
	SessionLabelLayout = "20060102_150405"
	// UnknownTimestamp labels sessions whose first chapter has no timestamp.
	UnknownTimestamp = "UnknownTimestamp"
	// UnknownSerial names the folder for files without a camera serial number.
	UnknownSerial = "UnknownSerial"
)

// Optional is a string attribute that may be absent. The zero value is absent.
type Optional struct {
	value   string
	present bool
}

// Some returns a present Optional holding value.
func Some(value string) Optional {
	return Optional{value: value, present: true}
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// Present reports whether a value was supplied.
func (o Optional) Present() bool { return o.present }

// Value returns the held value, or "" when absent.
func (o Optional) Value() string { return o.value }

// Or returns the held value, or fallback when absent.
func (o Optional) Or(fallback string) string {
	if !o.present {
		return fallback
	}
	return o.value
}

func (o Optional) String() string {
	if !o.present {
		return "<absent>"
	}
	return o.value
}

// MarshalJSON renders absent values as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON accepts null, strings and numbers.
func (o *Optional) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*o = None()
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Some(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("optional value: unsupported JSON %s", trimmed)
	}
	*o = Some(n.String())
	return nil
}

// VideoMetadata is the resolved description of one video file.
type VideoMetadata struct {
	CameraSerialNumber Optional  `json:"camera_serial_number"`
	Model              Optional  `json:"model"`
	TrackCreateDate    Optional  `json:"track_create_date"`
	FileName           string    `json:"file_name"`
	VideoType          VideoType `json:"video_type"`
}

// Serial returns the camera serial number or UnknownSerial when absent.
func (m VideoMetadata) Serial() string {
	return m.CameraSerialNumber.Or(UnknownSerial)
}

// CreateTime parses TrackCreateDate. It fails when the date is absent or does
// not follow CreateDateLayout.
func (m VideoMetadata) CreateTime() (time.Time, error) {
	if !m.TrackCreateDate.Present() {
		return time.Time{}, ErrNoCreateDate
	}
	return ParseCreateDate(m.TrackCreateDate.Value())
}

// ParseCreateDate parses an exiftool timestamp in the local time zone.
func ParseCreateDate(raw string) (time.Time, error) {
	ts, err := time.ParseInLocation(CreateDateLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse create date %q: %w", raw, err)
	}
	return ts, nil
}

// InWindow reports whether ts falls in the half-open window [minTime, maxTime).
func InWindow(ts, minTime, maxTime time.Time) bool {
	return !ts.Before(minTime) && ts.Before(maxTime)
}
