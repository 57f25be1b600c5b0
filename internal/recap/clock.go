package recap

import (
	"strings"
	"time"
)

// Layouts the sheet backend has been seen emitting. Tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatClock renders a source timestamp as a 24-hour HH:MM string. Values
// that carry no date shape (e.g. an already-formatted "07:15") or that fail
// to parse come back verbatim; empty values render as the placeholder.
func FormatClock(raw string) string {
	if raw == "" {
		return "--:--"
	}
	if !strings.ContainsAny(raw, "T-") {
		return raw
	}
	if t, ok := parseTimestamp(raw); ok {
		return t.Format("15:04")
	}
	return raw
}

// dayKey reduces a timestamp to its calendar day. The second return is false
// for values that do not parse; those are excluded from unique-day counting.
func dayKey(raw string) (string, bool) {
	if t, ok := parseTimestamp(raw); ok {
		return t.Format("2006-01-02"), true
	}
	return "", false
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
