package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentInfo numbers a parcel within its purchase (1-indexed).
type InstallmentInfo struct {
	Current int `json:"current"` // 1..Total
	Total   int `json:"total"`
}

// Transaction is a dated financial event: either a one-off ("variable")
// income/expense, or one parcel of an installment purchase. The two cases
// share every field except Installment/PurchaseID, which are set only for
// parcels. Kind is always explicit; nothing is inferred from field presence.
type Transaction struct {
	TransactionID string           `json:"transactionID"`
	Kind          Kind             `json:"kind"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"` // Positive
	Date          time.Time        `json:"date"`   // UTC instant, pinned to the persist time-of-day
	CategoryID    string           `json:"categoryID"`
	Installment   *InstallmentInfo `json:"installment,omitempty"` // Nil unless this is a parcel
	PurchaseID    string           `json:"purchaseID,omitempty"`  // Owning purchase, parcels only
	AuditFields
}

// IsParcel reports whether the transaction belongs to an installment
// purchase. Parcels are owned by their purchase: they are created and
// deleted only through it.
func (t Transaction) IsParcel() bool {
	return t.Installment != nil
}
