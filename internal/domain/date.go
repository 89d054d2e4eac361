package domain

import (
	"strings"
	"time"
)

// eventTimeLayouts are the timestamp shapes seen in source data, most
// specific first. The "January 2, 2006" forms cover the human-written dates
// in fallback records ("July 15, 2025 - 6:00 PM" after the dash is stripped).
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006 3:04 PM",
	"January 2, 2006",
}

// ParseEventTime parses an event timestamp in any of the supported formats.
// The second return value is false when the input is unparsable; callers must
// treat that as "no usable date", never as an error.
func ParseEventTime(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	// Human-written dates use " - " between date and time.
	if i := strings.Index(s, " - "); i >= 0 {
		s = s[:i] + " " + s[i+3:]
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
