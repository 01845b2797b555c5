package services

import (
	"context"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
)

// ReportingSvcFacade answers the four query shapes the UI is built on:
// single day, week, month totals, and trailing-N-month balance history.
// All of them are computed by the schedule engine over a snapshot loaded
// from the repositories.
type ReportingSvcFacade interface {
	DayEvents(ctx context.Context, date string) ([]schedule.Event, error)
	WeekEvents(ctx context.Context, date string) (start, end time.Time, events []schedule.Event, totals schedule.RangeTotals, err error)
	MonthSummary(ctx context.Context, year int, month time.Month) (schedule.MonthSummary, error)
	BalanceHistory(ctx context.Context, year int, month time.Month, months int) ([]schedule.MonthBalance, error)
}
