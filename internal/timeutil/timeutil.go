package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// minuteLayout is RFC 3339 without seconds, as ESPN emits ("2025-09-05T00:20Z").
const minuteLayout = "2006-01-02T15:04Z07:00"

var timestampLayouts = []string{time.RFC3339Nano, minuteLayout}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseUTC parses an ISO-8601 timestamp carrying a zone designator and returns it in UTC.
func ParseUTC(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("timeutil: unrecognized timestamp %q", value)
}

// SameUTCDate reports whether a and b fall on the same UTC calendar date.
func SameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
