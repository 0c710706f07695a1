package expense

import (
	"context"
	"sync"
)

type memoryRepo struct {
	mu       sync.RWMutex
	expenses []*Expense
}

// NewMemoryRepository creates an empty in-memory expense store. Records are
// kept in insertion order.
func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) Create(ctx context.Context, e *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.expenses = append(r.expenses, &cp)
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
