package schedule

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Snapshot is an immutable view of the catalogue the engine computes over.
// The surrounding service replaces the whole snapshot after each successful
// write, so the engine never observes a partial state.
type Snapshot struct {
	Categories   []domain.Category
	FixedItems   []domain.FixedItem
	Variations   []domain.MonthlyVariation
	Transactions []domain.Transaction

	// Location is the zone local calendar days are computed in.
	// Nil means time.Local.
	Location *time.Location
}

func (s Snapshot) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// Category resolves a category id, returning the Uncategorized placeholder
// for ids that no longer exist. Dangling references are expected after a
// category is deleted and are never an error.
func (s Snapshot) Category(categoryID string) domain.Category {
	for _, c := range s.Categories {
		if c.CategoryID == categoryID {
			return c
		}
	}
	return domain.Uncategorized
}

// Event is one resolved financial event on a calendar day: a variable
// transaction, an installment parcel, or a synthesized fixed-item occurrence.
type Event struct {
	ID             string                  `json:"id"`
	Description    string                  `json:"description"`
	Amount         decimal.Decimal         `json:"amount"`
	Kind           domain.Kind             `json:"kind"`
	Date           time.Time               `json:"date"` // Local calendar day
	Category       string                  `json:"category"`
	CategoryColor  string                  `json:"categoryColor"`
	Installment    *domain.InstallmentInfo `json:"installment,omitempty"`
	IsFixed        bool                    `json:"isFixed"`
	HasVariation   bool                    `json:"hasVariation"`
	StandardAmount *decimal.Decimal        `json:"standardAmount,omitempty"` // Default amount, set when HasVariation
}

// RangeTotals aggregates a list of events by kind.
type RangeTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

func totalsOf(events []Event) RangeTotals {
	var t RangeTotals
	for _, e := range events {
		if e.Kind == domain.Expense {
			t.Expense = t.Expense.Add(e.Amount)
		} else {
			t.Income = t.Income.Add(e.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}

// EventsOnDate returns every event on the given local calendar date:
// transactions and parcels whose persisted instant is same-day, plus fixed
// items occurring that day with their amounts resolved through the month's
// variations. An empty result is valid and common.
func (s Snapshot) EventsOnDate(date time.Time) []Event {
	loc := s.loc()
	events := []Event{}

	for _, t := range s.Transactions {
		if !SameDay(t.Date, date, loc) {
			continue
		}
		events = append(events, Event{
			ID:            t.TransactionID,
			Description:   t.Description,
			Amount:        t.Amount,
			Kind:          t.Kind,
			Date:          LocalDay(t.Date, loc),
			Category:      s.Category(t.CategoryID).Name,
			CategoryColor: s.Category(t.CategoryID).Color,
			Installment:   t.Installment,
		})
	}

	for _, f := range s.FixedItems {
		if !OccursOnDate(f, date, loc) {
			continue
		}
		amount := ResolveAmount(s.Variations, f.FixedItemID, f.Kind, date.Year(), date.Month(), f.Amount)
		ev := Event{
			ID:            f.FixedItemID,
			Description:   f.Description,
			Amount:        amount,
			Kind:          f.Kind,
			Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc),
			Category:      s.Category(f.CategoryID).Name,
			CategoryColor: s.Category(f.CategoryID).Color,
			IsFixed:       true,
		}
		if !amount.Equal(f.Amount) {
			standard := f.Amount
			ev.HasVariation = true
			ev.StandardAmount = &standard
		}
		events = append(events, ev)
	}

	return events
}

// EventsInRange applies EventsOnDate to every day in [from, to] inclusive
// and returns the events in day order along with the range totals.
func (s Snapshot) EventsInRange(from, to time.Time) ([]Event, RangeTotals) {
	loc := s.loc()
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)

	events := []Event{}
	for !day.After(end) {
		events = append(events, s.EventsOnDate(day)...)
		day = day.AddDate(0, 0, 1)
	}
	return events, totalsOf(events)
}

// WeekEvents returns the events of the Sunday-to-Saturday week containing
// the given local date.
func (s Snapshot) WeekEvents(date time.Time) ([]Event, RangeTotals) {
	local := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc())
	return s.EventsInRange(StartOfWeek(local), EndOfWeek(local))
}

// MonthSummary is the breakdown of one calendar month: variable events
// summed by local day, fixed items summed at month level through the
// override resolver.
type MonthSummary struct {
	Year            int             `json:"year"`
	Month           time.Month      `json:"month"`
	VariableIncome  decimal.Decimal `json:"variableIncome"`
	VariableExpense decimal.Decimal `json:"variableExpense"`
	FixedIncome     decimal.Decimal `json:"fixedIncome"`
	FixedExpense    decimal.Decimal `json:"fixedExpense"`
	IncomeTotal     decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal    decimal.Decimal `json:"expenseTotal"`
	Net             decimal.Decimal `json:"net"`
}

// MonthSummary computes the totals of (year, month). Variable transactions
// and parcels count when their local calendar day falls in the month; fixed
// items count when ActiveInMonth, at their resolved amount.
func (s Snapshot) MonthSummary(year int, month time.Month) MonthSummary {
	loc := s.loc()
	sum := MonthSummary{Year: year, Month: month}

	for _, t := range s.Transactions {
		d := LocalDay(t.Date, loc)
		if d.Year() != year || d.Month() != month {
			continue
		}
		if t.Kind == domain.Expense {
			sum.VariableExpense = sum.VariableExpense.Add(t.Amount)
		} else {
			sum.VariableIncome = sum.VariableIncome.Add(t.Amount)
		}
	}

	for _, f := range s.FixedItems {
		if !ActiveInMonth(f, year, month, loc) {
			continue
		}
		amount := ResolveAmount(s.Variations, f.FixedItemID, f.Kind, year, month, f.Amount)
		if f.Kind == domain.Expense {
			sum.FixedExpense = sum.FixedExpense.Add(amount)
		} else {
			sum.FixedIncome = sum.FixedIncome.Add(amount)
		}
	}

	sum.IncomeTotal = sum.VariableIncome.Add(sum.FixedIncome)
	sum.ExpenseTotal = sum.VariableExpense.Add(sum.FixedExpense)
	sum.Net = sum.IncomeTotal.Sub(sum.ExpenseTotal)
	return sum
}

// MonthBalance is one point of a balance-history series.
type MonthBalance struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// TrailingBalances computes the net balance of the n months ending at
// (year, month), walking backward with year carry, returned oldest first.
// n <= 0 yields an empty series.
func (s Snapshot) TrailingBalances(year int, month time.Month, n int) []MonthBalance {
	if n <= 0 {
		return []MonthBalance{}
	}
	out := make([]MonthBalance, n)
	y, m := year, month
	for i := n - 1; i >= 0; i-- {
		sum := s.MonthSummary(y, m)
		out[i] = MonthBalance{
			Year:    y,
			Month:   m,
			Income:  sum.IncomeTotal,
			Expense: sum.ExpenseTotal,
			Net:     sum.Net,
		}
		m--
		if m < time.January {
			m = time.December
			y--
		}
	}
	return out
}
