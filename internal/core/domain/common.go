package domain

import "time"

// Kind classifies an entity as money coming in or going out.
type Kind string

const (
	Income  Kind = "INCOME"
	Expense Kind = "EXPENSE"
)

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	return k == Income || k == Expense
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
