package schedule

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
)

// ActiveInMonth reports whether a fixed item generates an occurrence in
// (year, month): its active period must overlap the month at all. This is
// the month-level test used when summing monthly totals; OccursOnDate is the
// day-level test used for calendar cells.
//
// Active iff startDate <= lastDayOfMonth and (no endDate or
// endDate >= firstDayOfMonth), all at local calendar-day precision.
func ActiveInMonth(item domain.FixedItem, year int, month time.Month, loc *time.Location) bool {
	first, last := MonthBounds(year, month, loc)
	start := LocalDay(item.StartDate, loc)
	if start.After(last) {
		return false
	}
	if item.EndDate == nil {
		return true
	}
	return !LocalDay(*item.EndDate, loc).Before(first)
}

// OccursOnDate reports whether a fixed item's recurrence day falls exactly on
// the given local date and the date is inside the item's active period,
// inclusive on both ends. An item with DayOfMonth 31 never occurs in a
// 30-day month: there is no backfill to the last day and no rollover into
// the next month.
func OccursOnDate(item domain.FixedItem, date time.Time, loc *time.Location) bool {
	if date.Day() != item.DayOfMonth {
		return false
	}
	if loc == nil {
		loc = time.Local
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	if day.Before(LocalDay(item.StartDate, loc)) {
		return false
	}
	if item.EndDate != nil && day.After(LocalDay(*item.EndDate, loc)) {
		return false
	}
	return true
}
