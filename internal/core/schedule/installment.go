package schedule

import (
	"fmt"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountCents converts an amount to integer cents, rejecting sub-cent
// precision. All installment arithmetic happens in integer cents so the
// parcel sum is exact, not approximately equal.
func amountCents(amount decimal.Decimal) (int64, error) {
	c := amount.Shift(2)
	if !c.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s has sub-cent precision", apperrors.ErrValidation, amount.String())
	}
	return c.IntPart(), nil
}

// ValidatePurchase checks the construction-boundary invariants of an
// installment purchase: a positive cent-precision total and at least one
// parcel. Violations are rejected here, before any parcel exists, never
// inside the aggregator.
func ValidatePurchase(p domain.InstallmentPurchase) error {
	if p.Count < 1 {
		return fmt.Errorf("%w: installment count must be at least 1, got %d", apperrors.ErrValidation, p.Count)
	}
	if !p.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: total amount must be positive, got %s", apperrors.ErrValidation, p.TotalAmount.String())
	}
	if _, err := amountCents(p.TotalAmount); err != nil {
		return err
	}
	return nil
}

// GenerateParcels expands a purchase into its dated parcels.
//
// Amounts: base share is the cent-floored total/count; the remainder is
// distributed one cent at a time starting from the first parcel, so earlier
// parcels may be one cent larger than later ones and the parcel amounts sum
// exactly to the total.
//
// Dates: parcel k falls on the anchor's day-of-month advanced by k-1 whole
// months, with the day clamped to the last day of shorter target months
// (anchor day 31 yields Feb 28/29, not a spill into March).
//
// TransactionID and audit fields are left for the caller to assign; the
// generator only derives what follows from the purchase itself.
func GenerateParcels(p domain.InstallmentPurchase, loc *time.Location) ([]domain.Transaction, error) {
	if err := ValidatePurchase(p); err != nil {
		return nil, err
	}

	totalCents, err := amountCents(p.TotalAmount)
	if err != nil {
		return nil, err
	}
	base := totalCents / int64(p.Count)
	remainder := totalCents % int64(p.Count)

	anchor := LocalDay(p.AnchorDate, loc)
	parcels := make([]domain.Transaction, 0, p.Count)
	for k := 1; k <= p.Count; k++ {
		cents := base
		if int64(k) <= remainder {
			cents++
		}
		date := AddMonthsClamped(anchor, k-1)
		parcels = append(parcels, domain.Transaction{
			Kind:        domain.Expense,
			Description: fmt.Sprintf("%s (%d/%d)", p.Description, k, p.Count),
			Amount:      decimal.New(cents, -2),
			Date:        ToPersistInstant(date),
			CategoryID:  p.CategoryID,
			Installment: &domain.InstallmentInfo{Current: k, Total: p.Count},
			PurchaseID:  p.PurchaseID,
		})
	}
	return parcels, nil
}
