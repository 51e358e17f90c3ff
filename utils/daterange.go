package utils

import "time"

// DateLayout is the wire and storage format for calendar days.
const DateLayout = "2006-01-02"

// Overlaps reports whether the half-open day ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one day. Dates are YYYY-MM-DD strings, so
// lexicographic order is date order. A checkout and a check-in on the same
// day do not overlap (back-to-back turnover is allowed).
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || bEnd <= aStart)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar day.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current calendar day in the server's local zone.
func Today() string {
	return time.Now().Format(DateLayout)
}
