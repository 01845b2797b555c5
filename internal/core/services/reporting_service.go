package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
)

// reportingServiceImpl implements the ReportingSvcFacade interface. It loads
// a full snapshot from the repositories and hands every computation to the
// schedule engine; the engine stays pure and the service stays thin.
type reportingServiceImpl struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	location *time.Location
}

// ReportingOption is a functional option for configuring the reporting service
type ReportingOption func(*reportingServiceImpl)

// WithReportingLocation sets the zone local calendar days are computed in
func WithReportingLocation(loc *time.Location) ReportingOption {
	return func(s *reportingServiceImpl) {
		s.location = loc
	}
}

// NewReportingServiceImpl creates a new reporting service with the provided options
func NewReportingServiceImpl(repos portsrepo.RepositoryProvider, options ...ReportingOption) portssvc.ReportingSvcFacade {
	svc := &reportingServiceImpl{
		repos:    repos,
		location: time.Local,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingServiceImpl implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

// loadSnapshot reads the whole catalogue in one pass. Orphaned variations
// (whose fixed item was deleted) are skipped: they can no longer influence
// any resolved amount and must not surface as errors.
func (s *reportingServiceImpl) loadSnapshot(ctx context.Context) (schedule.Snapshot, error) {
	categories, err := s.repos.CategoryRepo.ListCategories(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories for snapshot")
		return schedule.Snapshot{}, err
	}
	items, err := s.repos.FixedItemRepo.ListFixedItems(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load fixed items for snapshot")
		return schedule.Snapshot{}, err
	}
	variations, err := s.repos.VariationRepo.ListVariations(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load variations for snapshot")
		return schedule.Snapshot{}, err
	}
	transactions, err := s.repos.TransactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for snapshot")
		return schedule.Snapshot{}, err
	}

	itemIDs := make(map[string]struct{}, len(items))
	for _, item := range items {
		itemIDs[item.FixedItemID] = struct{}{}
	}
	kept := variations[:0]
	for _, v := range variations {
		if _, ok := itemIDs[v.FixedItemID]; ok {
			kept = append(kept, v)
		}
	}

	return schedule.Snapshot{
		Categories:   categories,
		FixedItems:   items,
		Variations:   kept,
		Transactions: transactions,
		Location:     s.location,
	}, nil
}

func (s *reportingServiceImpl) DayEvents(ctx context.Context, date string) ([]schedule.Event, error) {
	day, err := schedule.ParseLocalDate(date, s.location)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		s.LogError(ctx, wrapped, "Invalid report date", slog.String("date", date))
		return nil, wrapped
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	events := snapshot.EventsOnDate(day)
	s.LogDebug(ctx, "Day events computed", slog.String("date", date), slog.Int("count", len(events)))
	return events, nil
}

func (s *reportingServiceImpl) WeekEvents(ctx context.Context, date string) (time.Time, time.Time, []schedule.Event, schedule.RangeTotals, error) {
	day, err := schedule.ParseLocalDate(date, s.location)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		s.LogError(ctx, wrapped, "Invalid report date", slog.String("date", date))
		return time.Time{}, time.Time{}, nil, schedule.RangeTotals{}, wrapped
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, nil, schedule.RangeTotals{}, err
	}

	events, totals := snapshot.WeekEvents(day)
	return schedule.StartOfWeek(day), schedule.EndOfWeek(day), events, totals, nil
}

func (s *reportingServiceImpl) MonthSummary(ctx context.Context, year int, month time.Month) (schedule.MonthSummary, error) {
	if month < time.January || month > time.December {
		err := fmt.Errorf("%w: month must be within 1..12, got %d", apperrors.ErrValidation, month)
		s.LogError(ctx, err, "Invalid report month")
		return schedule.MonthSummary{}, err
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return schedule.MonthSummary{}, err
	}
	return snapshot.MonthSummary(year, month), nil
}

func (s *reportingServiceImpl) BalanceHistory(ctx context.Context, year int, month time.Month, months int) ([]schedule.MonthBalance, error) {
	if month < time.January || month > time.December {
		err := fmt.Errorf("%w: month must be within 1..12, got %d", apperrors.ErrValidation, month)
		s.LogError(ctx, err, "Invalid report month")
		return nil, err
	}
	if months < 1 {
		err := fmt.Errorf("%w: months must be at least 1, got %d", apperrors.ErrValidation, months)
		s.LogError(ctx, err, "Invalid history length")
		return nil, err
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.TrailingBalances(year, month, months), nil
}
