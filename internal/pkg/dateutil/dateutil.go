package dateutil

import "time"

// Layout is the wire format for voucher expiration dates
const Layout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd string into a local date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// FormatDate formats a date as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the current local date truncated to midnight
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
