package models

// Expense is an outgoing transaction recorded against a category.
type Expense struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PayMode     string  `json:"payMode"`
}
