package logging

import "time"

// logTimestampLayout is the console timestamp; the JSON handler uses RFC 3339.
const logTimestampLayout = "2006-01-02 15:04:05"

// formatTimestamp renders ts in local time, or "" for the zero time.
func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(time.Local).Format(logTimestampLayout)
}
