package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentPurchase is an expense split into Count monthly parcels whose
// amounts sum exactly to TotalAmount. The purchase is the aggregate root for
// its parcels: deleting the purchase deletes every parcel, and deleting any
// one parcel deletes the purchase and all siblings. Partial deletion is
// unsupported by design.
type InstallmentPurchase struct {
	PurchaseID  string          `json:"purchaseID"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"totalAmount"` // Positive, at most two decimal places
	AnchorDate  time.Time       `json:"anchorDate"`  // Date of the first parcel (UTC instant)
	CategoryID  string          `json:"categoryID"`
	Count       int             `json:"count"` // Number of parcels, >= 1
	AuditFields
}
