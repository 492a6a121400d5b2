package convert

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts is the closed set of formats seen in Takeout exports,
// tried in order. RFC 3339 with fractional seconds covers the usual
// "2020-10-10T03:46:42.098Z" form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseUnixMillis converts an ISO 8601 string to Unix epoch milliseconds.
func parseUnixMillis(iso string) (int64, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, iso)
		if err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized timestamp %q", iso)
}

// parseCalendarDay extracts the "YYYY-MM-DD" calendar day an ISO 8601
// string represents. No timezone shifting is applied beyond what the
// string itself encodes: the date part is taken as written.
func parseCalendarDay(iso string) (string, error) {
	day, _, _ := strings.Cut(iso, "T")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return "", fmt.Errorf("unrecognized date %q", iso)
	}
	return day, nil
}
