package dto

import (
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/shopspring/decimal"
)

// EventResponse is one resolved financial event as shown on a calendar day.
type EventResponse struct {
	ID             string                  `json:"id"`
	Description    string                  `json:"description"`
	Amount         decimal.Decimal         `json:"amount"`
	IsExpense      bool                    `json:"isExpense"`
	Date           string                  `json:"date"` // YYYY-MM-DD
	Category       string                  `json:"category"`
	CategoryColor  string                  `json:"categoryColor"`
	Installment    *domain.InstallmentInfo `json:"installment,omitempty"`
	IsFixed        bool                    `json:"isFixed,omitempty"`
	HasVariation   bool                    `json:"hasVariation,omitempty"`
	StandardAmount *decimal.Decimal        `json:"standardAmount,omitempty"`
}

// RangeTotalsResponse mirrors schedule.RangeTotals.
type RangeTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// DayEventsResponse is the answer to "what happens on day D".
type DayEventsResponse struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

// WeekEventsResponse is the answer to "what happens in the week of D".
type WeekEventsResponse struct {
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Events    []EventResponse     `json:"events"`
	Totals    RangeTotalsResponse `json:"totals"`
}

// MonthSummaryResponse mirrors schedule.MonthSummary.
type MonthSummaryResponse struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"` // 1..12
	VariableIncome  decimal.Decimal `json:"variableIncome"`
	VariableExpense decimal.Decimal `json:"variableExpense"`
	FixedIncome     decimal.Decimal `json:"fixedIncome"`
	FixedExpense    decimal.Decimal `json:"fixedExpense"`
	IncomeTotal     decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal    decimal.Decimal `json:"expenseTotal"`
	Net             decimal.Decimal `json:"net"`
}

// MonthBalanceResponse is one point of a balance-history series.
type MonthBalanceResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"` // 1..12
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// BalanceHistoryResponse is a trailing-N-month net balance series, oldest first.
type BalanceHistoryResponse struct {
	Points []MonthBalanceResponse `json:"points"`
}

// ToEventResponse converts a schedule.Event to a response DTO
func ToEventResponse(e schedule.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Description:    e.Description,
		Amount:         e.Amount,
		IsExpense:      e.Kind == domain.Expense,
		Date:           schedule.FormatLocalDate(e.Date),
		Category:       e.Category,
		CategoryColor:  e.CategoryColor,
		Installment:    e.Installment,
		IsFixed:        e.IsFixed,
		HasVariation:   e.HasVariation,
		StandardAmount: e.StandardAmount,
	}
}

// ToListEventResponse converts schedule events to response DTOs
func ToListEventResponse(events []schedule.Event) []EventResponse {
	res := make([]EventResponse, len(events))
	for i, e := range events {
		res[i] = ToEventResponse(e)
	}
	return res
}

// ToRangeTotalsResponse converts schedule.RangeTotals to a response DTO
func ToRangeTotalsResponse(t schedule.RangeTotals) RangeTotalsResponse {
	return RangeTotalsResponse{Income: t.Income, Expense: t.Expense, Net: t.Net}
}

// ToMonthSummaryResponse converts a schedule.MonthSummary to a response DTO
func ToMonthSummaryResponse(s schedule.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Year:            s.Year,
		Month:           int(s.Month),
		VariableIncome:  s.VariableIncome,
		VariableExpense: s.VariableExpense,
		FixedIncome:     s.FixedIncome,
		FixedExpense:    s.FixedExpense,
		IncomeTotal:     s.IncomeTotal,
		ExpenseTotal:    s.ExpenseTotal,
		Net:             s.Net,
	}
}

// ToBalanceHistoryResponse converts a trailing balance series to a response DTO
func ToBalanceHistoryResponse(series []schedule.MonthBalance) BalanceHistoryResponse {
	points := make([]MonthBalanceResponse, len(series))
	for i, p := range series {
		points[i] = MonthBalanceResponse{
			Year:    p.Year,
			Month:   int(p.Month),
			Income:  p.Income,
			Expense: p.Expense,
			Net:     p.Net,
		}
	}
	return BalanceHistoryResponse{Points: points}
}
