package domain

// Category labels transactions and fixed items for display and grouping.
// Deleting a category does not cascade: references to a missing category
// resolve to the Uncategorized placeholder, never to an error.
type Category struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Color       string `json:"color"` // Hex color for the UI, e.g. "#4caf50"
	Description string `json:"description"`
	AuditFields
}

// Uncategorized is the placeholder returned when a referenced category no
// longer exists (e.g. it was deleted after the transaction was created).
var Uncategorized = Category{
	CategoryID: "",
	Name:       "Uncategorized",
	Color:      "#9e9e9e",
}
