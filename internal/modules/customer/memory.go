package customer

import (
	"context"
	"fmt"
	"sync"
)

type memoryRepo struct {
	mu        sync.RWMutex
	customers []*Customer
}

// NewMemoryRepository creates an empty in-memory customer store.
func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) Create(ctx context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.customers = append(r.customers, &cp)
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("customer %s not found", id)
}

func (r *memoryRepo) List(ctx context.Context) ([]*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Customer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
