// Package schedule implements the recurrence, override, and installment
// resolution engine. Every function is a pure computation over in-memory
// snapshots: no I/O, no clocks, no mutation. Callers load the data, build a
// Snapshot, and ask questions about days, weeks, and months.
package schedule

import (
	"fmt"
	"time"
)

// localDateLayout is the wire form of a local calendar date.
const localDateLayout = "2006-01-02"

// persistHourUTC is the time-of-day every calendar date is pinned to when
// serialized as a UTC instant. Noon keeps the calendar day stable when the
// instant is read back in any zone between UTC-11 and UTC+11: midnight UTC
// would land on the previous day for every zone west of Greenwich.
const persistHourUTC = 12

// ParseLocalDate parses a YYYY-MM-DD string as midnight in loc. It never
// interprets the string as UTC midnight; doing so is the classic
// off-by-one-day bug this package exists to prevent. A nil loc means
// time.Local.
func ParseLocalDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(localDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatLocalDate renders a date in the YYYY-MM-DD wire form.
func FormatLocalDate(date time.Time) string {
	return date.Format(localDateLayout)
}

// ToPersistInstant maps a local calendar date to the UTC instant it is
// persisted as: the same calendar day at persistHourUTC.
func ToPersistInstant(localDate time.Time) time.Time {
	return time.Date(localDate.Year(), localDate.Month(), localDate.Day(), persistHourUTC, 0, 0, 0, time.UTC)
}

// LocalDay converts a persisted UTC instant back to the local calendar date
// it represents: midnight in loc on the day the instant falls in that zone.
// All comparisons that mix a persisted instant with a local date must go
// through this conversion first; comparing raw instants to local dates is a
// defect class, not a shortcut.
func LocalDay(instant time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t := instant.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a persisted instant falls on the given local
// calendar date.
func SameDay(instant time.Time, localDate time.Time, loc *time.Location) bool {
	d := LocalDay(instant, loc)
	return d.Year() == localDate.Year() && d.Month() == localDate.Month() && d.Day() == localDate.Day()
}

// StartOfWeek returns midnight of the Sunday on or before date, in date's
// location.
func StartOfWeek(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// EndOfWeek returns midnight of the Saturday ending the week containing date.
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, 6)
}

// SameWeek reports whether a persisted instant falls in the same
// Sunday-to-Saturday week as the given local date.
func SameWeek(instant time.Time, localDate time.Time, loc *time.Location) bool {
	return StartOfWeek(LocalDay(instant, loc)).Equal(StartOfWeek(localDate))
}

// MonthBounds returns the first and last calendar day of (year, month) as
// local midnights in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (first, last time.Time) {
	if loc == nil {
		loc = time.Local
	}
	first = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last = time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return first, last
}

// LastDayOfMonth returns the number of days in (year, month).
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped advances date by n whole calendar months, clamping the day
// when the target month is shorter. time.Time.AddDate would normalize the
// overflow instead (Jan 31 + 1 month = Mar 3), silently moving the event into
// the wrong month.
func AddMonthsClamped(date time.Time, n int) time.Time {
	// Normalize (year, month+n) via a first-of-month date, then clamp the day.
	anchor := time.Date(date.Year(), date.Month()+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	day := date.Day()
	if limit := LastDayOfMonth(anchor.Year(), anchor.Month()); day > limit {
		day = limit
	}
	return time.Date(anchor.Year(), anchor.Month(), day,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}
