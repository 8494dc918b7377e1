package main

import (
	"fmt"
	"strings"
	"time"
)

// localLayouts are interpreted in the local time zone, like camera clocks.
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// defaultSince is the lower bound of the window when --since is omitted.
func defaultSince() time.Time {
	return time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local)
}

func parseTimeFlag(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	for _, layout := range localLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use YYYY-MM-DD, \"YYYY-MM-DD HH:MM:SS\" or RFC3339)", value)
}
