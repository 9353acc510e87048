// Package dates centralizes the calendar conventions of the booking engine:
// the two accepted input layouts, the half-open overlap rule and the
// one-night floor used by every price computation.
package dates

import "time"

const (
	// DisplayLayout is the canonical wire format (dd/mm/yyyy). All dates in
	// responses use this layout.
	DisplayLayout = "02/01/2006"
	// ISOLayout is the secondary accepted input format.
	ISOLayout = "2006-01-02"
	// TimestampLayout formats real check-in/check-out timestamps.
	TimestampLayout = "2006-01-02 15:04:05"
)

// Parse accepts DisplayLayout or ISOLayout. The boolean is false when the
// text matches neither; callers treat that as a validation failure rather
// than an error.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{DisplayLayout, ISOLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders a date in the canonical dd/mm/yyyy output form.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Overlaps is the half-open interval test used uniformly for
// reservation-vs-reservation and offer-vs-stay comparisons.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// Nights returns the number of billable nights between check-in and
// check-out, never less than one.
func Nights(checkin, checkout time.Time) int {
	nights := int(checkout.Sub(checkin).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// Today derives the caller's local calendar day from a UTC instant and a
// timezone offset in minutes (as reported by JavaScript's
// Date.getTimezoneOffset), truncated to midnight.
func Today(now time.Time, tzOffsetMinutes int) time.Time {
	local := now.UTC().Add(-time.Duration(tzOffsetMinutes) * time.Minute)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Age computes completed years between birth and today. Negative when the
// birth date lies in the future.
func Age(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}
