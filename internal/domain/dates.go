package domain

import "time"

// DateLayout is the ISO-8601 calendar date layout used for persistence and flags.
const DateLayout = "2006-01-02"

// Date returns the calendar date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf returns the calendar date of t in t's own location, expressed at
// midnight UTC so that day arithmetic never crosses a DST boundary.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of whole calendar days from a to b.
// The result is negative when b precedes a. It works from Unix seconds
// because time.Duration saturates about 292 years out.
func DaysBetween(a, b time.Time) int {
	return int((DateOf(b).Unix() - DateOf(a).Unix()) / secondsPerDay)
}
