package domain

import "time"

// DayOf truncates t to the start of its calendar day in UTC.
// All date comparisons in the core go through this function so that
// client and server clocks agree on day boundaries.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of the UTC month containing t.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// AfterDay reports whether a falls on a later UTC day than b.
func AfterDay(a, b time.Time) bool {
	return DayOf(a).After(DayOf(b))
}
