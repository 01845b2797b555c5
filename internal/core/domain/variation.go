package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyVariation overrides a fixed item's amount for exactly one
// (fixedItemID, kind, year, month) tuple. At most one variation exists per
// tuple; the write side upserts and the resolver assumes uniqueness.
//
// A variation whose amount equals the item's default is never stored: "no
// override" and "override equal to default" collapse into one state.
type MonthlyVariation struct {
	VariationID string          `json:"variationID"`
	FixedItemID string          `json:"fixedItemID"`
	Kind        Kind            `json:"kind"`
	Year        int             `json:"year"`
	Month       time.Month      `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}
