package expense

import "context"

// Repository defines the interface for expense storage. Expenses are
// append-only.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	List(ctx context.Context) ([]*Expense, error)
}
