package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedItem is a recurring income or expense that repeats on a fixed
// day-of-month while its active period overlaps the month in question.
// The active period is [StartDate, EndDate] inclusive, or [StartDate, ∞)
// when EndDate is nil.
//
// Invariant: EndDate, when present, is on or after StartDate.
type FixedItem struct {
	FixedItemID string          `json:"fixedItemID"`
	Kind        Kind            `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`     // Positive default amount per occurrence
	DayOfMonth  int             `json:"dayOfMonth"` // 1..31; no backfill in shorter months
	StartDate   time.Time       `json:"startDate"`  // UTC instant, pinned to the persist time-of-day
	EndDate     *time.Time      `json:"endDate"`    // Nil means open-ended
	CategoryID  string          `json:"categoryID"`
	AuditFields
}

// Closed reports whether the item has been soft-closed (given an end date).
func (f FixedItem) Closed() bool {
	return f.EndDate != nil
}
