package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)

	d, err := ParseLocalDate("2025-10-05", loc)
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, 0, d.Hour(), "must be local midnight, not UTC midnight")
	assert.Equal(t, loc, d.Location())
}

func TestParseLocalDate_Malformed(t *testing.T) {
	for _, input := range []string{"", "05/10/2025", "2025-13-01", "not-a-date", "2025-10-05T12:00:00Z"} {
		_, err := ParseLocalDate(input, time.UTC)
		assert.Error(t, err, "input %q should fail fast", input)
	}
}

func TestPersistRoundTrip_KeepsCalendarDay(t *testing.T) {
	// The instant is pinned to noon UTC, so reading it back anywhere between
	// UTC-11 and UTC+11 must recover the same calendar day.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-11", -11*60*60),
		time.FixedZone("UTC-8", -8*60*60),
		time.FixedZone("UTC+5:30", 5*60*60+30*60),
		time.FixedZone("UTC+11", 11*60*60),
	}
	for _, loc := range zones {
		date, err := ParseLocalDate("2024-02-29", loc)
		require.NoError(t, err)

		instant := ToPersistInstant(date)
		assert.True(t, instant.Equal(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)))

		day := LocalDay(instant, loc)
		assert.Equal(t, "2024-02-29", FormatLocalDate(day), "zone %s shifted the day", loc)
	}
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	date, _ := ParseLocalDate("2025-06-10", loc)
	instant := ToPersistInstant(date)

	assert.True(t, SameDay(instant, date, loc))

	nextDay, _ := ParseLocalDate("2025-06-11", loc)
	assert.False(t, SameDay(instant, nextDay, loc))
}

func TestWeekBounds_SundayStart(t *testing.T) {
	// 2025-10-08 is a Wednesday.
	wed, _ := ParseLocalDate("2025-10-08", time.UTC)

	assert.Equal(t, "2025-10-05", FormatLocalDate(StartOfWeek(wed)))
	assert.Equal(t, "2025-10-11", FormatLocalDate(EndOfWeek(wed)))

	// A Sunday is its own week start.
	sun, _ := ParseLocalDate("2025-10-05", time.UTC)
	assert.Equal(t, "2025-10-05", FormatLocalDate(StartOfWeek(sun)))
}

func TestSameWeek(t *testing.T) {
	loc := time.UTC
	mon, _ := ParseLocalDate("2025-10-06", loc)
	sat, _ := ParseLocalDate("2025-10-11", loc)
	nextSun, _ := ParseLocalDate("2025-10-12", loc)

	instant := ToPersistInstant(mon)
	assert.True(t, SameWeek(instant, sat, loc))
	assert.False(t, SameWeek(instant, nextSun, loc))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February, time.UTC)
	assert.Equal(t, "2024-02-01", FormatLocalDate(first))
	assert.Equal(t, "2024-02-29", FormatLocalDate(last))

	first, last = MonthBounds(2025, time.December, time.UTC)
	assert.Equal(t, "2025-12-01", FormatLocalDate(first))
	assert.Equal(t, "2025-12-31", FormatLocalDate(last))
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 31, LastDayOfMonth(2025, time.January))
	assert.Equal(t, 28, LastDayOfMonth(2025, time.February))
	assert.Equal(t, 29, LastDayOfMonth(2024, time.February))
	assert.Equal(t, 30, LastDayOfMonth(2025, time.November))
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"plain advance", "2025-10-05", 1, "2025-11-05"},
		{"year rollover", "2025-11-15", 3, "2026-02-15"},
		{"clamp to short month", "2025-01-31", 1, "2025-02-28"},
		{"clamp leap february", "2024-01-31", 1, "2024-02-29"},
		{"clamp then keep original day", "2025-01-31", 2, "2025-03-31"},
		{"day 31 into 30-day month", "2025-08-31", 1, "2025-09-30"},
		{"zero months", "2025-10-05", 0, "2025-10-05"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, err := ParseLocalDate(tc.start, time.UTC)
			require.NoError(t, err)
			got := AddMonthsClamped(start, tc.months)
			assert.Equal(t, tc.want, FormatLocalDate(got))
		})
	}
}
