package schedule

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FindVariation returns the variation matching the exact
// (fixedItemID, kind, year, month) tuple, if one exists. A linear scan is
// fine here: variation sets are small and bounded per item per month. The
// write side guarantees at most one match per tuple.
func FindVariation(variations []domain.MonthlyVariation, fixedItemID string, kind domain.Kind, year int, month time.Month) (domain.MonthlyVariation, bool) {
	for _, v := range variations {
		if v.FixedItemID == fixedItemID && v.Kind == kind && v.Year == year && v.Month == month {
			return v, true
		}
	}
	return domain.MonthlyVariation{}, false
}

// ResolveAmount returns the effective amount of a fixed item for
// (year, month): the matching variation's amount if one exists, else
// defaultAmount. Pure and total; an unknown item simply resolves to its
// default.
func ResolveAmount(variations []domain.MonthlyVariation, fixedItemID string, kind domain.Kind, year int, month time.Month, defaultAmount decimal.Decimal) decimal.Decimal {
	if v, ok := FindVariation(variations, fixedItemID, kind, year, month); ok {
		return v.Amount
	}
	return defaultAmount
}
