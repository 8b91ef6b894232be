package models

// Expense represents an expense entry owned by a user.
// Amount is kept as raw text for wire compatibility with existing clients
// and is never parsed as a number. UserID is nullable; an expense may
// outlive its owner because user deletion does not cascade.
type Expense struct {
	ID          int64  `json:"id"`
	UserID      *int64 `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"` // Format: YYYY-MM-DD, assigned at creation
}
