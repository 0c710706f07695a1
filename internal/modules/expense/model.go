package expense

import "time"

// Category groups operating expenses.
type Category string

const (
	CategoryShipping  Category = "Shipping"
	CategoryPackaging Category = "Packaging"
	CategoryMarketing Category = "Marketing"
	CategoryOther     Category = "Other"
)

// ValidCategory returns true if c is a known expense category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryShipping, CategoryPackaging, CategoryMarketing, CategoryOther:
		return true
	}
	return false
}

// Expense records an operating cost outside stock purchases.
type Expense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"expense_date"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Receipt     string    `json:"receipt,omitempty"`
}
