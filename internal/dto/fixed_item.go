package dto

import (
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/shopspring/decimal"
)

// CreateFixedItemRequest defines the data needed to create a fixed item.
// Dates travel as local calendar dates (YYYY-MM-DD); the service converts
// them to persisted UTC instants.
type CreateFixedItemRequest struct {
	Kind        domain.Kind     `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DayOfMonth  int             `json:"dayOfMonth" binding:"required,min=1,max=31"`
	StartDate   string          `json:"startDate" binding:"required,localdate"` // YYYY-MM-DD
	EndDate     *string         `json:"endDate" binding:"omitempty,localdate"` // Optional YYYY-MM-DD
	CategoryID  string          `json:"categoryID" binding:"required"`
}

// UpdateFixedItemRequest defines the data allowed for updating a fixed item.
type UpdateFixedItemRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DayOfMonth  *int             `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	StartDate   *string          `json:"startDate" binding:"omitempty,localdate"` // YYYY-MM-DD
	EndDate     *string          `json:"endDate"`   // YYYY-MM-DD; empty string clears the end date
	CategoryID  *string          `json:"categoryID"`
}

// FixedItemResponse defines the data returned for a fixed item.
type FixedItemResponse struct {
	FixedItemID string          `json:"fixedItemID"`
	Kind        domain.Kind     `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DayOfMonth  int             `json:"dayOfMonth"`
	StartDate   string          `json:"startDate"`         // YYYY-MM-DD
	EndDate     *string         `json:"endDate,omitempty"` // YYYY-MM-DD
	CategoryID  string          `json:"categoryID"`
	Closed      bool            `json:"closed"`
}

// ToFixedItemResponse converts a domain.FixedItem to FixedItemResponse DTO
func ToFixedItemResponse(item *domain.FixedItem) FixedItemResponse {
	res := FixedItemResponse{
		FixedItemID: item.FixedItemID,
		Kind:        item.Kind,
		Description: item.Description,
		Amount:      item.Amount,
		DayOfMonth:  item.DayOfMonth,
		// Persisted instants are pinned to noon UTC, so their UTC day is the
		// calendar day they encode.
		StartDate:  schedule.FormatLocalDate(schedule.LocalDay(item.StartDate, time.UTC)),
		CategoryID: item.CategoryID,
		Closed:     item.Closed(),
	}
	if item.EndDate != nil {
		end := schedule.FormatLocalDate(schedule.LocalDay(*item.EndDate, time.UTC))
		res.EndDate = &end
	}
	return res
}

// ToListFixedItemResponse converts a slice of domain.FixedItem to response DTOs
func ToListFixedItemResponse(items []domain.FixedItem) []FixedItemResponse {
	res := make([]FixedItemResponse, len(items))
	for i := range items {
		res[i] = ToFixedItemResponse(&items[i])
	}
	return res
}
