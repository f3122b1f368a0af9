package models

// SectionAll scopes a fee type to every class.
const SectionAll = "All"

// FeeType represents a billable academic fee. Section is either SectionAll
// or a specific class name, scoping which students owe this fee.
type FeeType struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Section      string  `json:"section"`
	Amount       float64 `json:"amount"`
	DueDate      string  `json:"dueDate"`
	ReminderDate string  `json:"reminderDate"`
}

// AppliesTo reports whether a student owes this fee.
func (ft FeeType) AppliesTo(s Student) bool {
	return ft.Section == SectionAll || ft.Section == s.Class
}
