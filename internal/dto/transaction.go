package dto

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a one-off
// ("variable") transaction. Installment parcels are never created through
// this request; they only exist through their purchase.
type CreateTransactionRequest struct {
	Kind        domain.Kind     `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,localdate"` // YYYY-MM-DD
	CategoryID  string          `json:"categoryID" binding:"required"`
}

// UpdateTransactionRequest defines the data allowed for updating a variable
// transaction. Parcels are immutable; delete the purchase instead.
type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date" binding:"omitempty,localdate"` // YYYY-MM-DD
	CategoryID  *string          `json:"categoryID"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// TransactionResponse defines the data returned for a transaction or parcel.
type TransactionResponse struct {
	TransactionID string                  `json:"transactionID"`
	Kind          domain.Kind             `json:"kind"`
	Description   string                  `json:"description"`
	Amount        decimal.Decimal         `json:"amount"`
	Date          string                  `json:"date"` // YYYY-MM-DD
	CategoryID    string                  `json:"categoryID"`
	Installment   *domain.InstallmentInfo `json:"installment,omitempty"`
	PurchaseID    string                  `json:"purchaseID,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Kind:          t.Kind,
		Description:   t.Description,
		Amount:        t.Amount,
		Date:          schedule.FormatLocalDate(schedule.LocalDay(t.Date, time.UTC)),
		CategoryID:    t.CategoryID,
		Installment:   t.Installment,
		PurchaseID:    t.PurchaseID,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
