package dto

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to create an installment
// purchase. Parcels are derived, never submitted.
type CreatePurchaseRequest struct {
	Description string          `json:"description" binding:"required"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	AnchorDate  string          `json:"anchorDate" binding:"required,localdate"` // YYYY-MM-DD, date of the first parcel
	CategoryID  string          `json:"categoryID" binding:"required"`
	Count       int             `json:"count" binding:"required,min=1"`
}

// PurchaseResponse defines the data returned for an installment purchase,
// including its derived parcels in installment order.
type PurchaseResponse struct {
	PurchaseID  string                `json:"purchaseID"`
	Description string                `json:"description"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	AnchorDate  string                `json:"anchorDate"` // YYYY-MM-DD
	CategoryID  string                `json:"categoryID"`
	Count       int                   `json:"count"`
	Parcels     []TransactionResponse `json:"parcels,omitempty"`
}

// ToPurchaseResponse converts a purchase and its parcels to a response DTO
func ToPurchaseResponse(p *domain.InstallmentPurchase, parcels []domain.Transaction) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:  p.PurchaseID,
		Description: p.Description,
		TotalAmount: p.TotalAmount,
		AnchorDate:  schedule.FormatLocalDate(schedule.LocalDay(p.AnchorDate, time.UTC)),
		CategoryID:  p.CategoryID,
		Count:       p.Count,
		Parcels:     ToListTransactionResponse(parcels),
	}
}

// ToListPurchaseResponse converts purchases (without parcels) to response DTOs
func ToListPurchaseResponse(purchases []domain.InstallmentPurchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i], nil)
	}
	return res
}
