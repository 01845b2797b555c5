package dto

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertVariationRequest defines the override submitted for one
// (fixed item, kind, year, month) tuple. The write side enforces tuple
// uniqueness; submitting an amount equal to the item's default deletes any
// stored variation instead of persisting a redundant one.
type UpsertVariationRequest struct {
	Kind   domain.Kind     `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Year   int             `json:"year" binding:"required,min=1970,max=9999"`
	Month  int             `json:"month" binding:"required,min=1,max=12"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// VariationResponse defines the data returned for a monthly variation.
type VariationResponse struct {
	VariationID string          `json:"variationID"`
	FixedItemID string          `json:"fixedItemID"`
	Kind        domain.Kind     `json:"kind"`
	Year        int             `json:"year"`
	Month       int             `json:"month"` // 1..12
	Amount      decimal.Decimal `json:"amount"`
}

// UpsertVariationResponse reports what the upsert did: Stored is false when
// the collapse rule removed (or never created) the variation.
type UpsertVariationResponse struct {
	Stored    bool               `json:"stored"`
	Variation *VariationResponse `json:"variation,omitempty"`
}

// ToVariationResponse converts a domain.MonthlyVariation to a response DTO
func ToVariationResponse(v *domain.MonthlyVariation) VariationResponse {
	return VariationResponse{
		VariationID: v.VariationID,
		FixedItemID: v.FixedItemID,
		Kind:        v.Kind,
		Year:        v.Year,
		Month:       int(v.Month),
		Amount:      v.Amount,
	}
}

// ToListVariationResponse converts a slice of variations to response DTOs
func ToListVariationResponse(variations []domain.MonthlyVariation) []VariationResponse {
	res := make([]VariationResponse, len(variations))
	for i := range variations {
		res[i] = ToVariationResponse(&variations[i])
	}
	return res
}

// MonthOf converts the request's 1-based month into time.Month.
func (r UpsertVariationRequest) MonthOf() time.Month {
	return time.Month(r.Month)
}
